package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedclip/feedclip/pkg/domain"
)

// CacheRepository handles the raw feed item cache. Identity key is
// (guid, feed_url); is_read and readability_content are sticky and survive
// any re-fetch of the same item.
type CacheRepository struct {
	db *sqlx.DB
}

// rawItemSQL represents a raw item for SQL operations
type rawItemSQL struct {
	GUID               string    `db:"guid"`
	FeedURL            string    `db:"feed_url"`
	FeedTitle          string    `db:"feed_title"`
	Title              string    `db:"title"`
	Link               string    `db:"link"`
	Published          time.Time `db:"published"`
	Description        string    `db:"description"`
	Content            string    `db:"content"`
	ReadabilityContent string    `db:"readability_content"`
	IsRead             bool      `db:"is_read"`
	FetchedAt          time.Time `db:"fetched_at"`
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(database *sqlx.DB) *CacheRepository {
	return &CacheRepository{db: database}
}

// Merge applies a batch of freshly normalized items to the cache inside one
// transaction. New keys are inserted as-is; existing keys are refreshed from
// the new reading except for is_read and readability_content, which carry
// over. Returns the number of newly inserted items.
func (r *CacheRepository) Merge(ctx context.Context, items []domain.RawItem) (newCount int, err error) {
	if len(items) == 0 {
		return 0, nil
	}

	existsQ := r.db.Rebind("SELECT EXISTS(SELECT 1 FROM raw_items WHERE guid = ? AND feed_url = ?)")
	insertQ := `
		INSERT INTO raw_items (
			guid, feed_url, feed_title, title, link, published,
			description, content, readability_content, is_read, fetched_at
		) VALUES (
			:guid, :feed_url, :feed_title, :title, :link, :published,
			:description, :content, :readability_content, :is_read, :fetched_at
		)`
	updateQ := r.db.Rebind(`
		UPDATE raw_items
		SET feed_title = ?, title = ?, link = ?, published = ?,
		    description = ?, content = ?, fetched_at = ?
		WHERE guid = ? AND feed_url = ?`)

	err = withRetry(ctx, func() error {
		newCount = 0
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin merge tx: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		for i := range items {
			item := &items[i]

			var exists bool
			if err := tx.GetContext(ctx, &exists, existsQ, item.GUID, item.FeedURL); err != nil {
				return fmt.Errorf("check item exists: %w", err)
			}

			if exists {
				if _, err := tx.ExecContext(ctx, updateQ,
					item.FeedTitle, item.Title, item.Link, item.Published,
					item.Description, item.Content, item.FetchedAt,
					item.GUID, item.FeedURL); err != nil {
					return fmt.Errorf("update cached item: %w", err)
				}
				continue
			}

			if _, err := tx.NamedExecContext(ctx, insertQ, toRawItemSQL(item)); err != nil {
				return fmt.Errorf("insert cached item: %w", err)
			}
			newCount++
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit merge tx: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newCount, nil
}

// Snapshot returns the whole cache ordered by publication date, newest first
func (r *CacheRepository) Snapshot(ctx context.Context) ([]domain.RawItem, error) {
	var rows []rawItemSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM raw_items ORDER BY published DESC")
	if err != nil {
		return nil, fmt.Errorf("cache snapshot: %w", err)
	}

	items := make([]domain.RawItem, len(rows))
	for i := range rows {
		items[i] = toDomainRawItem(&rows[i])
	}
	return items, nil
}

// MarkRead flips the sticky read flag for one item
func (r *CacheRepository) MarkRead(ctx context.Context, key domain.ItemKey) error {
	query := r.db.Rebind("UPDATE raw_items SET is_read = ? WHERE guid = ? AND feed_url = ?")
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, true, key.GUID, key.FeedURL); err != nil {
			return fmt.Errorf("mark item read: %w", err)
		}
		return nil
	})
}

// SetReadabilityContent stores extracted content for an item. Set once, it
// is never overwritten by a later merge or extraction.
func (r *CacheRepository) SetReadabilityContent(ctx context.Context, key domain.ItemKey, content string) error {
	query := r.db.Rebind(`
		UPDATE raw_items SET readability_content = ?
		WHERE guid = ? AND feed_url = ? AND readability_content = ''`)
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, content, key.GUID, key.FeedURL); err != nil {
			return fmt.Errorf("set readability content: %w", err)
		}
		return nil
	})
}

// DeleteByFeed prunes all cached items of one feed, used on unsubscribe
func (r *CacheRepository) DeleteByFeed(ctx context.Context, feedURL string) error {
	query := r.db.Rebind("DELETE FROM raw_items WHERE feed_url = ?")
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, feedURL); err != nil {
			return fmt.Errorf("delete items by feed: %w", err)
		}
		return nil
	})
}

// toRawItemSQL converts a domain item for SQL operations
func toRawItemSQL(item *domain.RawItem) *rawItemSQL {
	return &rawItemSQL{
		GUID:               item.GUID,
		FeedURL:            item.FeedURL,
		FeedTitle:          item.FeedTitle,
		Title:              item.Title,
		Link:               item.Link,
		Published:          item.Published,
		Description:        item.Description,
		Content:            item.Content,
		ReadabilityContent: item.ReadabilityContent,
		IsRead:             item.IsRead,
		FetchedAt:          item.FetchedAt,
	}
}

// toDomainRawItem converts a SQL row back to the domain shape
func toDomainRawItem(row *rawItemSQL) domain.RawItem {
	return domain.RawItem{
		GUID:               row.GUID,
		FeedURL:            row.FeedURL,
		FeedTitle:          row.FeedTitle,
		Title:              row.Title,
		Link:               row.Link,
		Published:          row.Published,
		Description:        row.Description,
		Content:            row.Content,
		ReadabilityContent: row.ReadabilityContent,
		IsRead:             row.IsRead,
		FetchedAt:          row.FetchedAt,
	}
}
