package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedclip/feedclip/pkg/domain"
)

// SubscriptionRepository handles subscription-related database operations
type SubscriptionRepository struct {
	db *sqlx.DB
}

// subscriptionSQL represents a subscription for SQL operations
type subscriptionSQL struct {
	URL          string    `db:"url"`
	Title        string    `db:"title"`
	SubscribedAt time.Time `db:"subscribed_at"`
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(database *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: database}
}

// Create inserts a new subscription; subscribing twice to the same URL is an
// error surfaced to the caller
func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := r.db.Rebind("INSERT INTO subscriptions (url, title, subscribed_at) VALUES (?, ?, ?)")
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, sub.URL, sub.Title, sub.SubscribedAt); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("subscription %s: %w", sub.URL, domain.ErrAlreadySubscribed)
			}
			return fmt.Errorf("create subscription: %w", err)
		}
		return nil
	})
}

// Get retrieves a subscription by feed URL
func (r *SubscriptionRepository) Get(ctx context.Context, url string) (*domain.Subscription, error) {
	var s subscriptionSQL
	query := r.db.Rebind("SELECT url, title, subscribed_at FROM subscriptions WHERE url = ?")
	if err := r.db.GetContext(ctx, &s, query, url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subscription %s: %w", url, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &domain.Subscription{URL: s.URL, Title: s.Title, SubscribedAt: s.SubscribedAt}, nil
}

// List returns all subscriptions ordered by title
func (r *SubscriptionRepository) List(ctx context.Context) ([]domain.Subscription, error) {
	var rows []subscriptionSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT url, title, subscribed_at FROM subscriptions ORDER BY title"); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	subs := make([]domain.Subscription, len(rows))
	for i, s := range rows {
		subs[i] = domain.Subscription{URL: s.URL, Title: s.Title, SubscribedAt: s.SubscribedAt}
	}
	return subs, nil
}

// Rename updates the subscription title; raw-item feed titles follow on the
// next merge because normalization reads the subscription record
func (r *SubscriptionRepository) Rename(ctx context.Context, url, title string) error {
	query := r.db.Rebind("UPDATE subscriptions SET title = ? WHERE url = ?")
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, title, url)
		if err != nil {
			return fmt.Errorf("rename subscription: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rename subscription affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("subscription %s: %w", url, domain.ErrNotFound)
		}
		return nil
	})
}

// Delete removes a subscription
func (r *SubscriptionRepository) Delete(ctx context.Context, url string) error {
	query := r.db.Rebind("DELETE FROM subscriptions WHERE url = ?")
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, url)
		if err != nil {
			return fmt.Errorf("delete subscription: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete subscription affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("subscription %s: %w", url, domain.ErrNotFound)
		}
		return nil
	})
}
