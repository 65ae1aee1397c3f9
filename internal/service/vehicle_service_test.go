package service

import (
	"context"
	"testing"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVehicleRepo struct {
	rows   map[int64]dom.Vehicle
	nextID int64
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{rows: make(map[int64]dom.Vehicle)}
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]dom.Vehicle, error) {
	var list []dom.Vehicle
	for id := int64(1); id <= r.nextID; id++ {
		if v, ok := r.rows[id]; ok {
			list = append(list, v)
		}
	}
	return list, nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id int64) (dom.Vehicle, error) {
	v, ok := r.rows[id]
	if !ok {
		return dom.Vehicle{}, pgx.ErrNoRows
	}
	return v, nil
}

// Create enforces the license_plate unique constraint the way Postgres
// reports it, so the service's error mapping is exercised.
func (r *fakeVehicleRepo) Create(ctx context.Context, v dom.Vehicle) (dom.Vehicle, error) {
	for _, existing := range r.rows {
		if existing.LicensePlate == v.LicensePlate {
			return dom.Vehicle{}, &pgconn.PgError{Code: "23505", ConstraintName: "vehicle_license_plate_key"}
		}
	}
	if v.ClientID <= 0 {
		return dom.Vehicle{}, &pgconn.PgError{Code: "23503", ConstraintName: "vehicle_client_id_fkey"}
	}
	r.nextID++
	v.ID = r.nextID
	r.rows[v.ID] = v
	return v, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, id int64, v dom.Vehicle) (dom.Vehicle, error) {
	if _, ok := r.rows[id]; !ok {
		return dom.Vehicle{}, pgx.ErrNoRows
	}
	for otherID, existing := range r.rows {
		if otherID != id && existing.LicensePlate == v.LicensePlate {
			return dom.Vehicle{}, &pgconn.PgError{Code: "23505", ConstraintName: "vehicle_license_plate_key"}
		}
	}
	v.ID = id
	r.rows[id] = v
	return v, nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id int64) (dom.Vehicle, error) {
	v, ok := r.rows[id]
	if !ok {
		return dom.Vehicle{}, pgx.ErrNoRows
	}
	delete(r.rows, id)
	return v, nil
}

func TestVehicleCreateDuplicatePlate(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Toyota", "Corolla", 2020, "AA-11-BB", 1)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Honda", "Civic", 2021, "AA-11-BB", 1)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestVehicleCreateBadClientReference(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	_, err := svc.Create(context.Background(), "Toyota", "Corolla", 2020, "CC-22-DD", 0)
	assert.ErrorIs(t, err, ErrBadReference)
}

func TestVehicleUpdateDuplicatePlate(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Toyota", "Corolla", 2020, "AA-11-BB", 1)
	require.NoError(t, err)
	second, err := svc.Create(ctx, "Honda", "Civic", 2021, "CC-22-DD", 1)
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, "Honda", "Civic", 2021, "AA-11-BB", 1)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestVehicleUpdateNotFound(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	_, err := svc.Update(context.Background(), 42, "Toyota", "Corolla", 2020, "AA-11-BB", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleTrimsFields(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	v, err := svc.Create(context.Background(), " Toyota ", " Corolla ", 2020, " AA-11-BB ", 1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", v.Brand)
	assert.Equal(t, "AA-11-BB", v.LicensePlate)
}
