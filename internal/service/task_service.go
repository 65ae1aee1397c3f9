package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "Taller/internal/domain"
	"Taller/internal/repo"

	"github.com/jackc/pgx/v5"
)

const (
	defaultStatusKey   = "default_task_status"
	fallbackTaskStatus = "pending"
)

type TaskService struct {
	repo     repo.TaskRepo
	settings *SettingService
}

// NewTaskService creates a TaskService. settings may be nil; the default
// task status then falls back to "pending".
func NewTaskService(r repo.TaskRepo, settings *SettingService) *TaskService {
	return &TaskService{repo: r, settings: settings}
}

func (s *TaskService) List(ctx context.Context) ([]dom.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Create inserts a task. An empty status resolves to the configured
// default; created_at is assigned by the database.
func (s *TaskService) Create(ctx context.Context, description string, employeeID int64, startDate time.Time, endDate *time.Time, status string, workID int64) (dom.Task, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		status = s.defaultStatus(ctx)
	}
	t, err := s.repo.Create(ctx, dom.Task{
		Description: strings.TrimSpace(description),
		EmployeeID:  employeeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		WorkID:      workID,
	})
	if err != nil {
		return dom.Task{}, mapWriteError(err)
	}
	return t, nil
}

// Update is a full replace of every mutable field.
func (s *TaskService) Update(ctx context.Context, id int64, description string, employeeID int64, startDate time.Time, endDate *time.Time, status string, workID int64) (dom.Task, error) {
	t, err := s.repo.Update(ctx, id, dom.Task{
		Description: strings.TrimSpace(description),
		EmployeeID:  employeeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      strings.TrimSpace(status),
		WorkID:      workID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, mapWriteError(err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) (dom.Task, error) {
	t, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) defaultStatus(ctx context.Context) string {
	if s.settings == nil {
		return fallbackTaskStatus
	}
	v, err := s.settings.Value(ctx, defaultStatusKey)
	if err != nil || v == "" {
		return fallbackTaskStatus
	}
	return v
}
