package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "Taller/internal/domain"
	"Taller/internal/repo"

	"github.com/jackc/pgx/v5"
)

// WorkPatch carries a partial work update. A nil field leaves the stored
// value unchanged. The Set* flags distinguish "leave the date alone"
// (false) from "write StartDate/EndDate, possibly nil to clear it" (true).
type WorkPatch struct {
	Description  *string
	Cost         *float64
	Status       *string
	VehicleID    *int64
	StartDate    *time.Time
	SetStartDate bool
	EndDate      *time.Time
	SetEndDate   bool
}

type WorkService struct {
	repo repo.WorkRepo
}

func NewWorkService(r repo.WorkRepo) *WorkService {
	return &WorkService{repo: r}
}

func (s *WorkService) List(ctx context.Context) ([]dom.Work, error) {
	return s.repo.List(ctx)
}

func (s *WorkService) GetByID(ctx context.Context, id int64) (dom.Work, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Work{}, ErrNotFound
		}
		return dom.Work{}, err
	}
	return w, nil
}

func (s *WorkService) Create(ctx context.Context, description string, cost float64, status string, vehicleID int64, startDate, endDate *time.Time) (dom.Work, error) {
	w, err := s.repo.Create(ctx, dom.Work{
		Description: strings.TrimSpace(description),
		Cost:        cost,
		Status:      strings.TrimSpace(status),
		VehicleID:   vehicleID,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return dom.Work{}, mapWriteError(err)
	}
	return w, nil
}

// Update merges the patch over the stored row and writes the result back.
// Work is the one entity with partial updates: a job's status changes
// many times while the rest of the row stays put.
func (s *WorkService) Update(ctx context.Context, id int64, p WorkPatch) (dom.Work, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Work{}, ErrNotFound
		}
		return dom.Work{}, err
	}
	patch := existing
	if p.Description != nil {
		patch.Description = strings.TrimSpace(*p.Description)
	}
	if p.Cost != nil {
		patch.Cost = *p.Cost
	}
	if p.Status != nil {
		patch.Status = strings.TrimSpace(*p.Status)
	}
	if p.VehicleID != nil {
		patch.VehicleID = *p.VehicleID
	}
	if p.SetStartDate {
		patch.StartDate = p.StartDate
	}
	if p.SetEndDate {
		patch.EndDate = p.EndDate
	}
	w, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Work{}, ErrNotFound
		}
		return dom.Work{}, mapWriteError(err)
	}
	return w, nil
}

func (s *WorkService) Delete(ctx context.Context, id int64) (dom.Work, error) {
	w, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Work{}, ErrNotFound
		}
		return dom.Work{}, err
	}
	return w, nil
}
