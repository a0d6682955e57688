package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SettingRepository is a small string KV store, used for the cached rule
// catalog and its freshness timestamp
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(database *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: database}
}

// GetSetting returns a value by name, empty string when absent
func (r *SettingRepository) GetSetting(ctx context.Context, name string) (string, error) {
	var value string
	query := r.db.Rebind("SELECT value FROM settings WHERE name = ?")
	err := r.db.GetContext(ctx, &value, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", name, err)
	}
	return value, nil
}

// SetSetting stores a value by name
func (r *SettingRepository) SetSetting(ctx context.Context, name, value string) error {
	query := r.db.Rebind(`
		INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value`)
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
			return fmt.Errorf("set setting %s: %w", name, err)
		}
		return nil
	})
}
