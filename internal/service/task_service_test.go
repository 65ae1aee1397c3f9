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

type fakeTaskRepo struct {
	rows   map[int64]dom.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{rows: make(map[int64]dom.Task)}
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]dom.Task, error) {
	var list []dom.Task
	for id := int64(1); id <= r.nextID; id++ {
		if t, ok := r.rows[id]; ok {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	t, ok := r.rows[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	r.rows[t.ID] = t
	return t, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, id int64, t dom.Task) (dom.Task, error) {
	existing, ok := r.rows[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.ID = id
	t.CreatedAt = existing.CreatedAt
	r.rows[id] = t
	return t, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id int64) (dom.Task, error) {
	t, ok := r.rows[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	delete(r.rows, id)
	return t, nil
}

// fakeSettingRepo backs a cache-less SettingService for default-status tests.
type fakeSettingRepo struct {
	values map[string]string
}

func (r *fakeSettingRepo) List(ctx context.Context) ([]dom.Setting, error) {
	var list []dom.Setting
	for k, v := range r.values {
		list = append(list, dom.Setting{KeyName: k, Value: v})
	}
	return list, nil
}

func (r *fakeSettingRepo) GetByKey(ctx context.Context, key string) (dom.Setting, error) {
	v, ok := r.values[key]
	if !ok {
		return dom.Setting{}, pgx.ErrNoRows
	}
	return dom.Setting{KeyName: key, Value: v}, nil
}

func (r *fakeSettingRepo) UpdateByKey(ctx context.Context, key, value string) (dom.Setting, error) {
	if _, ok := r.values[key]; !ok {
		return dom.Setting{}, pgx.ErrNoRows
	}
	r.values[key] = value
	return dom.Setting{KeyName: key, Value: value}, nil
}

func TestTaskCreateUsesConfiguredDefaultStatus(t *testing.T) {
	settings := NewSettingService(&fakeSettingRepo{values: map[string]string{
		"default_task_status": "queued",
	}}, nil)
	svc := NewTaskService(newFakeTaskRepo(), settings)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task, err := svc.Create(context.Background(), "replace brake pads", 1, start, nil, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "queued", task.Status)
}

func TestTaskCreateFallsBackToPending(t *testing.T) {
	// no setting row and no settings service at all
	settings := NewSettingService(&fakeSettingRepo{values: map[string]string{}}, nil)
	for name, svc := range map[string]*TaskService{
		"missing key": NewTaskService(newFakeTaskRepo(), settings),
		"nil service": NewTaskService(newFakeTaskRepo(), nil),
	} {
		t.Run(name, func(t *testing.T) {
			start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			task, err := svc.Create(context.Background(), "replace brake pads", 1, start, nil, "", 1)
			require.NoError(t, err)
			assert.Equal(t, "pending", task.Status)
		})
	}
}

func TestTaskCreateKeepsExplicitStatus(t *testing.T) {
	settings := NewSettingService(&fakeSettingRepo{values: map[string]string{
		"default_task_status": "queued",
	}}, nil)
	svc := NewTaskService(newFakeTaskRepo(), settings)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task, err := svc.Create(context.Background(), "replace brake pads", 1, start, nil, "in_progress", 1)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", task.Status)
}

func TestTaskUpdateFullReplace(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), nil)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, "replace brake pads", 1, start, nil, "pending", 1)
	require.NoError(t, err)

	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, created.ID, "replace brake pads and discs", 2, start, &end, "completed", 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(2), updated.EmployeeID)
	assert.Equal(t, "completed", updated.Status)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, end, *updated.EndDate)
}

func TestTaskGetNotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), nil)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
