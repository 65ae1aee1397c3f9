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

type fakeWorkRepo struct {
	rows   map[int64]dom.Work
	nextID int64
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{rows: make(map[int64]dom.Work)}
}

func (r *fakeWorkRepo) List(ctx context.Context) ([]dom.Work, error) {
	var list []dom.Work
	for id := int64(1); id <= r.nextID; id++ {
		if w, ok := r.rows[id]; ok {
			list = append(list, w)
		}
	}
	return list, nil
}

func (r *fakeWorkRepo) GetByID(ctx context.Context, id int64) (dom.Work, error) {
	w, ok := r.rows[id]
	if !ok {
		return dom.Work{}, pgx.ErrNoRows
	}
	return w, nil
}

func (r *fakeWorkRepo) Create(ctx context.Context, w dom.Work) (dom.Work, error) {
	r.nextID++
	w.ID = r.nextID
	w.CreatedAt = time.Now()
	r.rows[w.ID] = w
	return w, nil
}

func (r *fakeWorkRepo) Update(ctx context.Context, id int64, w dom.Work) (dom.Work, error) {
	existing, ok := r.rows[id]
	if !ok {
		return dom.Work{}, pgx.ErrNoRows
	}
	w.ID = id
	w.CreatedAt = existing.CreatedAt
	r.rows[id] = w
	return w, nil
}

func (r *fakeWorkRepo) Delete(ctx context.Context, id int64) (dom.Work, error) {
	w, ok := r.rows[id]
	if !ok {
		return dom.Work{}, pgx.ErrNoRows
	}
	delete(r.rows, id)
	return w, nil
}

func seedWork(t *testing.T, svc *WorkService) dom.Work {
	t.Helper()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	w, err := svc.Create(context.Background(), "engine overhaul", 500, "in_progress", 1, &start, nil)
	require.NoError(t, err)
	return w
}

func TestWorkUpdateStatusOnly(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())
	w := seedWork(t, svc)

	status := "completed"
	got, err := svc.Update(context.Background(), w.ID, WorkPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, w.Description, got.Description)
	assert.Equal(t, w.Cost, got.Cost)
	assert.Equal(t, w.VehicleID, got.VehicleID)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, *w.StartDate, *got.StartDate)
	assert.Nil(t, got.EndDate)
}

func TestWorkUpdateCostZeroIsApplied(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())
	w := seedWork(t, svc)

	cost := 0.0
	got, err := svc.Update(context.Background(), w.ID, WorkPatch{Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Cost)
	assert.Equal(t, w.Status, got.Status)
}

func TestWorkUpdateClearStartDate(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())
	w := seedWork(t, svc)
	require.NotNil(t, w.StartDate)

	got, err := svc.Update(context.Background(), w.ID, WorkPatch{SetStartDate: true})
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
}

func TestWorkUpdateSetEndDate(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())
	w := seedWork(t, svc)

	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := svc.Update(context.Background(), w.ID, WorkPatch{EndDate: &end, SetEndDate: true})
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, end, *got.EndDate)
	require.NotNil(t, got.StartDate)
}

func TestWorkUpdateEmptyPatchChangesNothing(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())
	w := seedWork(t, svc)

	got, err := svc.Update(context.Background(), w.ID, WorkPatch{})
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestWorkUpdateNotFound(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())

	status := "completed"
	_, err := svc.Update(context.Background(), 42, WorkPatch{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkDeleteThenGetNotFound(t *testing.T) {
	svc := NewWorkService(newFakeWorkRepo())
	w := seedWork(t, svc)

	deleted, err := svc.Delete(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, deleted.ID)

	_, err = svc.GetByID(context.Background(), w.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
