package service

import (
	"context"
	"errors"

	"Taller/internal/cache"
	dom "Taller/internal/domain"
	"Taller/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

type SettingService struct {
	repo  repo.SettingRepo
	cache *cache.SettingCache
	sf    singleflight.Group
}

// NewSettingService creates a SettingService. If c is nil, caching is disabled.
func NewSettingService(r repo.SettingRepo, c *cache.SettingCache) *SettingService {
	return &SettingService{repo: r, cache: c}
}

func (s *SettingService) List(ctx context.Context) ([]dom.Setting, error) {
	return s.repo.List(ctx)
}

// Get returns the full setting row. Reads go to the database: the cache
// only holds values, not updated_at.
func (s *SettingService) Get(ctx context.Context, key string) (dom.Setting, error) {
	st, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Setting{}, ErrNotFound
		}
		return dom.Setting{}, err
	}
	return st, nil
}

// Value returns the setting's value, read through the cache.
func (s *SettingService) Value(ctx context.Context, key string) (string, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("setting:"+key, func() (interface{}, error) {
			if val, ok, err := s.cache.Get(ctx, key); err == nil && ok {
				return val, nil
			}
			st, err := s.repo.GetByKey(ctx, key)
			if err != nil {
				return nil, err
			}
			_ = s.cache.Set(ctx, key, st.Value)
			return st.Value, nil
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", ErrNotFound
			}
			return "", err
		}
		return v.(string), nil
	}
	st, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return st.Value, nil
}

// Update sets the value for an existing key. Unknown keys are not created.
func (s *SettingService) Update(ctx context.Context, key, value string) (dom.Setting, error) {
	st, err := s.repo.UpdateByKey(ctx, key, value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Setting{}, ErrNotFound
		}
		return dom.Setting{}, mapWriteError(err)
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, key)
	}
	return st, nil
}
