package repo

import (
	"context"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceItemRepo interface {
	List(ctx context.Context) ([]dom.InvoiceItem, error)
	GetByID(ctx context.Context, id int64) (dom.InvoiceItem, error)
	Create(ctx context.Context, it dom.InvoiceItem) (dom.InvoiceItem, error)
	Update(ctx context.Context, id int64, it dom.InvoiceItem) (dom.InvoiceItem, error)
	Delete(ctx context.Context, id int64) (dom.InvoiceItem, error)
}

type PGInvoiceItemRepo struct {
	db *pgxpool.Pool
}

func NewPGInvoiceItemRepo(db *pgxpool.Pool) *PGInvoiceItemRepo {
	return &PGInvoiceItemRepo{db: db}
}

func (r *PGInvoiceItemRepo) List(ctx context.Context) ([]dom.InvoiceItem, error) {
	query := `
		SELECT item_id, description, cost, invoice_id, task_id
		FROM invoice_item ORDER BY item_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.InvoiceItem
	for rows.Next() {
		var it dom.InvoiceItem
		if err := rows.Scan(&it.ID, &it.Description, &it.Cost, &it.InvoiceID, &it.TaskID); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *PGInvoiceItemRepo) GetByID(ctx context.Context, id int64) (dom.InvoiceItem, error) {
	query := `
		SELECT item_id, description, cost, invoice_id, task_id
		FROM invoice_item WHERE item_id = $1`
	var it dom.InvoiceItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Description, &it.Cost, &it.InvoiceID, &it.TaskID,
	)
	return it, err
}

func (r *PGInvoiceItemRepo) Create(ctx context.Context, it dom.InvoiceItem) (dom.InvoiceItem, error) {
	query := `
		INSERT INTO invoice_item (description, cost, invoice_id, task_id)
		VALUES ($1, $2, $3, $4)
		RETURNING item_id, description, cost, invoice_id, task_id`
	var out dom.InvoiceItem
	err := r.db.QueryRow(ctx, query, it.Description, it.Cost, it.InvoiceID, it.TaskID).Scan(
		&out.ID, &out.Description, &out.Cost, &out.InvoiceID, &out.TaskID,
	)
	return out, err
}

func (r *PGInvoiceItemRepo) Update(ctx context.Context, id int64, it dom.InvoiceItem) (dom.InvoiceItem, error) {
	query := `
		UPDATE invoice_item SET description = $2, cost = $3, invoice_id = $4, task_id = $5
		WHERE item_id = $1
		RETURNING item_id, description, cost, invoice_id, task_id`
	var out dom.InvoiceItem
	err := r.db.QueryRow(ctx, query, id, it.Description, it.Cost, it.InvoiceID, it.TaskID).Scan(
		&out.ID, &out.Description, &out.Cost, &out.InvoiceID, &out.TaskID,
	)
	return out, err
}

func (r *PGInvoiceItemRepo) Delete(ctx context.Context, id int64) (dom.InvoiceItem, error) {
	query := `
		DELETE FROM invoice_item WHERE item_id = $1
		RETURNING item_id, description, cost, invoice_id, task_id`
	var out dom.InvoiceItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.Description, &out.Cost, &out.InvoiceID, &out.TaskID,
	)
	return out, err
}
