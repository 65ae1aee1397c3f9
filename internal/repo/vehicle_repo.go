package repo

import (
	"context"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepo interface {
	List(ctx context.Context) ([]dom.Vehicle, error)
	GetByID(ctx context.Context, id int64) (dom.Vehicle, error)
	Create(ctx context.Context, v dom.Vehicle) (dom.Vehicle, error)
	Update(ctx context.Context, id int64, v dom.Vehicle) (dom.Vehicle, error)
	Delete(ctx context.Context, id int64) (dom.Vehicle, error)
}

type PGVehicleRepo struct {
	db *pgxpool.Pool
}

func NewPGVehicleRepo(db *pgxpool.Pool) *PGVehicleRepo {
	return &PGVehicleRepo{db: db}
}

func (r *PGVehicleRepo) List(ctx context.Context) ([]dom.Vehicle, error) {
	query := `
		SELECT vehicle_id, brand, model, year, license_plate, client_id, created_at
		FROM vehicle ORDER BY vehicle_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Vehicle
	for rows.Next() {
		var v dom.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Year,
			&v.LicensePlate, &v.ClientID, &v.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *PGVehicleRepo) GetByID(ctx context.Context, id int64) (dom.Vehicle, error) {
	query := `
		SELECT vehicle_id, brand, model, year, license_plate, client_id, created_at
		FROM vehicle WHERE vehicle_id = $1`
	var v dom.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Brand, &v.Model, &v.Year, &v.LicensePlate, &v.ClientID, &v.CreatedAt,
	)
	return v, err
}

func (r *PGVehicleRepo) Create(ctx context.Context, v dom.Vehicle) (dom.Vehicle, error) {
	query := `
		INSERT INTO vehicle (brand, model, year, license_plate, client_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING vehicle_id, brand, model, year, license_plate, client_id, created_at`
	var out dom.Vehicle
	err := r.db.QueryRow(ctx, query, v.Brand, v.Model, v.Year, v.LicensePlate, v.ClientID).Scan(
		&out.ID, &out.Brand, &out.Model, &out.Year, &out.LicensePlate, &out.ClientID, &out.CreatedAt,
	)
	return out, err
}

func (r *PGVehicleRepo) Update(ctx context.Context, id int64, v dom.Vehicle) (dom.Vehicle, error) {
	query := `
		UPDATE vehicle SET brand = $2, model = $3, year = $4, license_plate = $5, client_id = $6
		WHERE vehicle_id = $1
		RETURNING vehicle_id, brand, model, year, license_plate, client_id, created_at`
	var out dom.Vehicle
	err := r.db.QueryRow(ctx, query, id, v.Brand, v.Model, v.Year, v.LicensePlate, v.ClientID).Scan(
		&out.ID, &out.Brand, &out.Model, &out.Year, &out.LicensePlate, &out.ClientID, &out.CreatedAt,
	)
	return out, err
}

func (r *PGVehicleRepo) Delete(ctx context.Context, id int64) (dom.Vehicle, error) {
	query := `
		DELETE FROM vehicle WHERE vehicle_id = $1
		RETURNING vehicle_id, brand, model, year, license_plate, client_id, created_at`
	var out dom.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.Brand, &out.Model, &out.Year, &out.LicensePlate, &out.ClientID, &out.CreatedAt,
	)
	return out, err
}
