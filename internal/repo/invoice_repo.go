package repo

import (
	"context"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepo interface {
	List(ctx context.Context) ([]dom.Invoice, error)
	GetByID(ctx context.Context, id int64) (dom.Invoice, error)
	Create(ctx context.Context, in dom.Invoice) (dom.Invoice, error)
	Update(ctx context.Context, id int64, in dom.Invoice) (dom.Invoice, error)
	Delete(ctx context.Context, id int64) (dom.Invoice, error)
}

type PGInvoiceRepo struct {
	db *pgxpool.Pool
}

func NewPGInvoiceRepo(db *pgxpool.Pool) *PGInvoiceRepo {
	return &PGInvoiceRepo{db: db}
}

func (r *PGInvoiceRepo) List(ctx context.Context) ([]dom.Invoice, error) {
	query := `
		SELECT invoice_id, client_id, issued_at, total, iva, total_with_iva
		FROM invoice ORDER BY invoice_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Invoice
	for rows.Next() {
		var inv dom.Invoice
		if err := rows.Scan(&inv.ID, &inv.ClientID, &inv.IssuedAt,
			&inv.Total, &inv.IVA, &inv.TotalWithIVA); err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func (r *PGInvoiceRepo) GetByID(ctx context.Context, id int64) (dom.Invoice, error) {
	query := `
		SELECT invoice_id, client_id, issued_at, total, iva, total_with_iva
		FROM invoice WHERE invoice_id = $1`
	var inv dom.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.ClientID, &inv.IssuedAt, &inv.Total, &inv.IVA, &inv.TotalWithIVA,
	)
	return inv, err
}

func (r *PGInvoiceRepo) Create(ctx context.Context, in dom.Invoice) (dom.Invoice, error) {
	query := `
		INSERT INTO invoice (client_id, issued_at, total, iva, total_with_iva)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING invoice_id, client_id, issued_at, total, iva, total_with_iva`
	var out dom.Invoice
	err := r.db.QueryRow(ctx, query, in.ClientID, in.IssuedAt, in.Total, in.IVA, in.TotalWithIVA).Scan(
		&out.ID, &out.ClientID, &out.IssuedAt, &out.Total, &out.IVA, &out.TotalWithIVA,
	)
	return out, err
}

func (r *PGInvoiceRepo) Update(ctx context.Context, id int64, in dom.Invoice) (dom.Invoice, error) {
	query := `
		UPDATE invoice SET client_id = $2, issued_at = $3, total = $4, iva = $5, total_with_iva = $6
		WHERE invoice_id = $1
		RETURNING invoice_id, client_id, issued_at, total, iva, total_with_iva`
	var out dom.Invoice
	err := r.db.QueryRow(ctx, query, id, in.ClientID, in.IssuedAt, in.Total, in.IVA, in.TotalWithIVA).Scan(
		&out.ID, &out.ClientID, &out.IssuedAt, &out.Total, &out.IVA, &out.TotalWithIVA,
	)
	return out, err
}

// Delete removes the invoice and, through the ON DELETE CASCADE on
// invoice_item, all of its line items in the same statement.
func (r *PGInvoiceRepo) Delete(ctx context.Context, id int64) (dom.Invoice, error) {
	query := `
		DELETE FROM invoice WHERE invoice_id = $1
		RETURNING invoice_id, client_id, issued_at, total, iva, total_with_iva`
	var out dom.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.ClientID, &out.IssuedAt, &out.Total, &out.IVA, &out.TotalWithIVA,
	)
	return out, err
}
