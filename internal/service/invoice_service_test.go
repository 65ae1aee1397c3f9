package service

import (
	"context"
	"testing"
	"time"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoiceRepo struct {
	rows   map[int64]dom.Invoice
	nextID int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{rows: make(map[int64]dom.Invoice)}
}

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]dom.Invoice, error) {
	var list []dom.Invoice
	for id := int64(1); id <= r.nextID; id++ {
		if inv, ok := r.rows[id]; ok {
			list = append(list, inv)
		}
	}
	return list, nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (dom.Invoice, error) {
	inv, ok := r.rows[id]
	if !ok {
		return dom.Invoice{}, pgx.ErrNoRows
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, in dom.Invoice) (dom.Invoice, error) {
	r.nextID++
	in.ID = r.nextID
	r.rows[in.ID] = in
	return in, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, id int64, in dom.Invoice) (dom.Invoice, error) {
	if _, ok := r.rows[id]; !ok {
		return dom.Invoice{}, pgx.ErrNoRows
	}
	in.ID = id
	r.rows[id] = in
	return in, nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id int64) (dom.Invoice, error) {
	inv, ok := r.rows[id]
	if !ok {
		return dom.Invoice{}, pgx.ErrNoRows
	}
	delete(r.rows, id)
	return inv, nil
}

func TestInvoiceCreateGetRoundTrip(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo())
	ctx := context.Background()

	issued := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, 1, issued, 100, 21, 121)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestInvoiceGetNotFound(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceUpdateNotFound(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo())

	_, err := svc.Update(context.Background(), 42, 1, time.Now(), 1, 0.21, 1.21)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceUpdateReplacesAllFields(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 100, 21, 121)
	require.NoError(t, err)

	issued := time.Date(2024, 2, 2, 9, 30, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, created.ID, 2, issued, 200, 42, 242)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(2), updated.ClientID)
	assert.Equal(t, issued, updated.IssuedAt)
	assert.Equal(t, 200.0, updated.Total)
}

func TestInvoiceDeleteNotFound(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo())

	_, err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceDeleteReturnsLastKnownRow(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 100, 21, 121)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
