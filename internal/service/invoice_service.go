package service

import (
	"context"
	"errors"
	"time"

	dom "Taller/internal/domain"
	"Taller/internal/repo"

	"github.com/jackc/pgx/v5"
)

type InvoiceService struct {
	repo repo.InvoiceRepo
}

func NewInvoiceService(r repo.InvoiceRepo) *InvoiceService {
	return &InvoiceService{repo: r}
}

func (s *InvoiceService) List(ctx context.Context) ([]dom.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *InvoiceService) GetByID(ctx context.Context, id int64) (dom.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Invoice{}, ErrNotFound
		}
		return dom.Invoice{}, err
	}
	return inv, nil
}

func (s *InvoiceService) Create(ctx context.Context, clientID int64, issuedAt time.Time, total, iva, totalWithIVA float64) (dom.Invoice, error) {
	inv, err := s.repo.Create(ctx, dom.Invoice{
		ClientID:     clientID,
		IssuedAt:     issuedAt,
		Total:        total,
		IVA:          iva,
		TotalWithIVA: totalWithIVA,
	})
	if err != nil {
		return dom.Invoice{}, mapWriteError(err)
	}
	return inv, nil
}

// Update is a full replace of every mutable field.
func (s *InvoiceService) Update(ctx context.Context, id, clientID int64, issuedAt time.Time, total, iva, totalWithIVA float64) (dom.Invoice, error) {
	inv, err := s.repo.Update(ctx, id, dom.Invoice{
		ClientID:     clientID,
		IssuedAt:     issuedAt,
		Total:        total,
		IVA:          iva,
		TotalWithIVA: totalWithIVA,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Invoice{}, ErrNotFound
		}
		return dom.Invoice{}, mapWriteError(err)
	}
	return inv, nil
}

// Delete removes the invoice and cascades to its line items. The deleted
// row's last-known state is returned.
func (s *InvoiceService) Delete(ctx context.Context, id int64) (dom.Invoice, error) {
	inv, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Invoice{}, ErrNotFound
		}
		return dom.Invoice{}, err
	}
	return inv, nil
}
