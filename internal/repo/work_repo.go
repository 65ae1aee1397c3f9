package repo

import (
	"context"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkRepo interface {
	List(ctx context.Context) ([]dom.Work, error)
	GetByID(ctx context.Context, id int64) (dom.Work, error)
	Create(ctx context.Context, w dom.Work) (dom.Work, error)
	Update(ctx context.Context, id int64, w dom.Work) (dom.Work, error)
	Delete(ctx context.Context, id int64) (dom.Work, error)
}

type PGWorkRepo struct {
	db *pgxpool.Pool
}

func NewPGWorkRepo(db *pgxpool.Pool) *PGWorkRepo {
	return &PGWorkRepo{db: db}
}

func (r *PGWorkRepo) List(ctx context.Context) ([]dom.Work, error) {
	query := `
		SELECT work_id, description, cost, status, vehicle_id, created_at, start_date, end_date
		FROM work ORDER BY work_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Work
	for rows.Next() {
		var w dom.Work
		if err := rows.Scan(&w.ID, &w.Description, &w.Cost, &w.Status,
			&w.VehicleID, &w.CreatedAt, &w.StartDate, &w.EndDate); err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func (r *PGWorkRepo) GetByID(ctx context.Context, id int64) (dom.Work, error) {
	query := `
		SELECT work_id, description, cost, status, vehicle_id, created_at, start_date, end_date
		FROM work WHERE work_id = $1`
	var w dom.Work
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Description, &w.Cost, &w.Status,
		&w.VehicleID, &w.CreatedAt, &w.StartDate, &w.EndDate,
	)
	return w, err
}

func (r *PGWorkRepo) Create(ctx context.Context, w dom.Work) (dom.Work, error) {
	query := `
		INSERT INTO work (description, cost, status, vehicle_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING work_id, description, cost, status, vehicle_id, created_at, start_date, end_date`
	var out dom.Work
	err := r.db.QueryRow(ctx, query, w.Description, w.Cost, w.Status,
		w.VehicleID, w.StartDate, w.EndDate).Scan(
		&out.ID, &out.Description, &out.Cost, &out.Status,
		&out.VehicleID, &out.CreatedAt, &out.StartDate, &out.EndDate,
	)
	return out, err
}

func (r *PGWorkRepo) Update(ctx context.Context, id int64, w dom.Work) (dom.Work, error) {
	query := `
		UPDATE work SET description = $2, cost = $3, status = $4, vehicle_id = $5, start_date = $6, end_date = $7
		WHERE work_id = $1
		RETURNING work_id, description, cost, status, vehicle_id, created_at, start_date, end_date`
	var out dom.Work
	err := r.db.QueryRow(ctx, query, id, w.Description, w.Cost, w.Status,
		w.VehicleID, w.StartDate, w.EndDate).Scan(
		&out.ID, &out.Description, &out.Cost, &out.Status,
		&out.VehicleID, &out.CreatedAt, &out.StartDate, &out.EndDate,
	)
	return out, err
}

func (r *PGWorkRepo) Delete(ctx context.Context, id int64) (dom.Work, error) {
	query := `
		DELETE FROM work WHERE work_id = $1
		RETURNING work_id, description, cost, status, vehicle_id, created_at, start_date, end_date`
	var out dom.Work
	err := r.db.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.Description, &out.Cost, &out.Status,
		&out.VehicleID, &out.CreatedAt, &out.StartDate, &out.EndDate,
	)
	return out, err
}
