package repo

import (
	"context"

	dom "Taller/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingRepo interface {
	List(ctx context.Context) ([]dom.Setting, error)
	GetByKey(ctx context.Context, key string) (dom.Setting, error)
	UpdateByKey(ctx context.Context, key, value string) (dom.Setting, error)
}

type PGSettingRepo struct {
	db *pgxpool.Pool
}

func NewPGSettingRepo(db *pgxpool.Pool) *PGSettingRepo {
	return &PGSettingRepo{db: db}
}

func (r *PGSettingRepo) List(ctx context.Context) ([]dom.Setting, error) {
	query := `
		SELECT setting_id, key_name, value, updated_at
		FROM setting ORDER BY key_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Setting
	for rows.Next() {
		var s dom.Setting
		if err := rows.Scan(&s.ID, &s.KeyName, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PGSettingRepo) GetByKey(ctx context.Context, key string) (dom.Setting, error) {
	query := `
		SELECT setting_id, key_name, value, updated_at
		FROM setting WHERE key_name = $1`
	var s dom.Setting
	err := r.db.QueryRow(ctx, query, key).Scan(&s.ID, &s.KeyName, &s.Value, &s.UpdatedAt)
	return s, err
}

func (r *PGSettingRepo) UpdateByKey(ctx context.Context, key, value string) (dom.Setting, error) {
	query := `
		UPDATE setting SET value = $2, updated_at = NOW()
		WHERE key_name = $1
		RETURNING setting_id, key_name, value, updated_at`
	var s dom.Setting
	err := r.db.QueryRow(ctx, query, key, value).Scan(&s.ID, &s.KeyName, &s.Value, &s.UpdatedAt)
	return s, err
}
