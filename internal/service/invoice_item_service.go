package service

import (
	"context"
	"errors"
	"strings"

	dom "Taller/internal/domain"
	"Taller/internal/repo"

	"github.com/jackc/pgx/v5"
)

type InvoiceItemService struct {
	repo repo.InvoiceItemRepo
}

func NewInvoiceItemService(r repo.InvoiceItemRepo) *InvoiceItemService {
	return &InvoiceItemService{repo: r}
}

func (s *InvoiceItemService) List(ctx context.Context) ([]dom.InvoiceItem, error) {
	return s.repo.List(ctx)
}

func (s *InvoiceItemService) GetByID(ctx context.Context, id int64) (dom.InvoiceItem, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.InvoiceItem{}, ErrNotFound
		}
		return dom.InvoiceItem{}, err
	}
	return it, nil
}

func (s *InvoiceItemService) Create(ctx context.Context, description string, cost float64, invoiceID int64, taskID *int64) (dom.InvoiceItem, error) {
	it, err := s.repo.Create(ctx, dom.InvoiceItem{
		Description: strings.TrimSpace(description),
		Cost:        cost,
		InvoiceID:   invoiceID,
		TaskID:      taskID,
	})
	if err != nil {
		return dom.InvoiceItem{}, mapWriteError(err)
	}
	return it, nil
}

func (s *InvoiceItemService) Update(ctx context.Context, id int64, description string, cost float64, invoiceID int64, taskID *int64) (dom.InvoiceItem, error) {
	it, err := s.repo.Update(ctx, id, dom.InvoiceItem{
		Description: strings.TrimSpace(description),
		Cost:        cost,
		InvoiceID:   invoiceID,
		TaskID:      taskID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.InvoiceItem{}, ErrNotFound
		}
		return dom.InvoiceItem{}, mapWriteError(err)
	}
	return it, nil
}

func (s *InvoiceItemService) Delete(ctx context.Context, id int64) (dom.InvoiceItem, error) {
	it, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.InvoiceItem{}, ErrNotFound
		}
		return dom.InvoiceItem{}, err
	}
	return it, nil
}
