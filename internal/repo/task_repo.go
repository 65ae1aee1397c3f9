package repo

import (
	"context"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo interface {
	List(ctx context.Context) ([]dom.Task, error)
	GetByID(ctx context.Context, id int64) (dom.Task, error)
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	Update(ctx context.Context, id int64, t dom.Task) (dom.Task, error)
	Delete(ctx context.Context, id int64) (dom.Task, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) List(ctx context.Context) ([]dom.Task, error) {
	query := `
		SELECT task_id, description, employee_id, start_date, end_date, status, work_id, created_at
		FROM task ORDER BY task_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.EmployeeID, &t.StartDate,
			&t.EndDate, &t.Status, &t.WorkID, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	query := `
		SELECT task_id, description, employee_id, start_date, end_date, status, work_id, created_at
		FROM task WHERE task_id = $1`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Description, &t.EmployeeID, &t.StartDate,
		&t.EndDate, &t.Status, &t.WorkID, &t.CreatedAt,
	)
	return t, err
}

// Create inserts the task; created_at is assigned by the database.
func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO task (description, employee_id, start_date, end_date, status, work_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING task_id, description, employee_id, start_date, end_date, status, work_id, created_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.Description, t.EmployeeID, t.StartDate,
		t.EndDate, t.Status, t.WorkID).Scan(
		&out.ID, &out.Description, &out.EmployeeID, &out.StartDate,
		&out.EndDate, &out.Status, &out.WorkID, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) Update(ctx context.Context, id int64, t dom.Task) (dom.Task, error) {
	query := `
		UPDATE task SET description = $2, employee_id = $3, start_date = $4, end_date = $5, status = $6, work_id = $7
		WHERE task_id = $1
		RETURNING task_id, description, employee_id, start_date, end_date, status, work_id, created_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, id, t.Description, t.EmployeeID, t.StartDate,
		t.EndDate, t.Status, t.WorkID).Scan(
		&out.ID, &out.Description, &out.EmployeeID, &out.StartDate,
		&out.EndDate, &out.Status, &out.WorkID, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) Delete(ctx context.Context, id int64) (dom.Task, error) {
	query := `
		DELETE FROM task WHERE task_id = $1
		RETURNING task_id, description, employee_id, start_date, end_date, status, work_id, created_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.Description, &out.EmployeeID, &out.StartDate,
		&out.EndDate, &out.Status, &out.WorkID, &out.CreatedAt,
	)
	return out, err
}
