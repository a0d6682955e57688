package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// LedgerRepository tracks the last successful fetch per feed. Advisory only:
// a missing entry just causes an extra fetch.
type LedgerRepository struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new fetch ledger repository
func NewLedgerRepository(database *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: database}
}

// Get returns the last successful fetch time of a feed
func (r *LedgerRepository) Get(ctx context.Context, feedURL string) (time.Time, bool, error) {
	var t time.Time
	query := r.db.Rebind("SELECT last_fetched FROM fetch_ledger WHERE feed_url = ?")
	err := r.db.GetContext(ctx, &t, query, feedURL)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get ledger entry: %w", err)
	}
	return t, true, nil
}

// Set records a successful fetch. Called only after fetch, parse and merge
// all completed for the feed.
func (r *LedgerRepository) Set(ctx context.Context, feedURL string, t time.Time) error {
	query := r.db.Rebind(`
		INSERT INTO fetch_ledger (feed_url, last_fetched) VALUES (?, ?)
		ON CONFLICT (feed_url) DO UPDATE SET last_fetched = excluded.last_fetched`)
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, feedURL, t); err != nil {
			return fmt.Errorf("set ledger entry: %w", err)
		}
		return nil
	})
}

// Delete drops the ledger entry for a feed, used on unsubscribe
func (r *LedgerRepository) Delete(ctx context.Context, feedURL string) error {
	query := r.db.Rebind("DELETE FROM fetch_ledger WHERE feed_url = ?")
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, feedURL); err != nil {
			return fmt.Errorf("delete ledger entry: %w", err)
		}
		return nil
	})
}
