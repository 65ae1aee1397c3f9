package service

import (
	"context"
	"errors"
	"strings"

	dom "Taller/internal/domain"
	"Taller/internal/repo"

	"github.com/jackc/pgx/v5"
)

type VehicleService struct {
	repo repo.VehicleRepo
}

func NewVehicleService(r repo.VehicleRepo) *VehicleService {
	return &VehicleService{repo: r}
}

func (s *VehicleService) List(ctx context.Context) ([]dom.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *VehicleService) GetByID(ctx context.Context, id int64) (dom.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Vehicle{}, ErrNotFound
		}
		return dom.Vehicle{}, err
	}
	return v, nil
}

// Create inserts a vehicle. A duplicate license plate surfaces as
// ErrDuplicate via the unique constraint.
func (s *VehicleService) Create(ctx context.Context, brand, model string, year int, licensePlate string, clientID int64) (dom.Vehicle, error) {
	v, err := s.repo.Create(ctx, dom.Vehicle{
		Brand:        strings.TrimSpace(brand),
		Model:        strings.TrimSpace(model),
		Year:         year,
		LicensePlate: strings.TrimSpace(licensePlate),
		ClientID:     clientID,
	})
	if err != nil {
		return dom.Vehicle{}, mapWriteError(err)
	}
	return v, nil
}

// Update is a full replace of every mutable field.
func (s *VehicleService) Update(ctx context.Context, id int64, brand, model string, year int, licensePlate string, clientID int64) (dom.Vehicle, error) {
	v, err := s.repo.Update(ctx, id, dom.Vehicle{
		Brand:        strings.TrimSpace(brand),
		Model:        strings.TrimSpace(model),
		Year:         year,
		LicensePlate: strings.TrimSpace(licensePlate),
		ClientID:     clientID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Vehicle{}, ErrNotFound
		}
		return dom.Vehicle{}, mapWriteError(err)
	}
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) (dom.Vehicle, error) {
	v, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Vehicle{}, ErrNotFound
		}
		return dom.Vehicle{}, err
	}
	return v, nil
}
