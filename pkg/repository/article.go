package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedclip/feedclip/pkg/domain"
)

// ArticleRepository handles promoted article records. The unique index on
// url makes promotion at most once even if two batches race: the loser's
// insert degrades to a no-op.
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	Content     string    `db:"content"`
	ImageURL    string    `db:"image_url"`
	Excerpt     string    `db:"excerpt"`
	DateAdded   time.Time `db:"date_added"`
	Published   time.Time `db:"published"`
	IsFavorite  bool      `db:"is_favorite"`
	IsReadLater bool      `db:"is_read_later"`
	IsRead      bool      `db:"is_read"`
	Tags        tagsSQL   `db:"tags"`
	Source      string    `db:"source"`
	FeedURL     string    `db:"feed_url"`
	FeedTitle   string    `db:"feed_title"`
}

// tagsSQL is a JSON array of tag strings for SQL operations
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = tagsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*t = tagsSQL{}
		return nil
	}
	return json.Unmarshal(data, t)
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// Exists checks whether an article with the URL is already stored
func (r *ArticleRepository) Exists(ctx context.Context, url string) (bool, error) {
	var exists bool
	query := r.db.Rebind("SELECT EXISTS(SELECT 1 FROM articles WHERE url = ?)")
	if err := r.db.GetContext(ctx, &exists, query, url); err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// CreateBatch persists a group of articles in one transaction. Conflicting
// URLs are skipped rather than failing the group. Returns how many rows were
// actually inserted.
func (r *ArticleRepository) CreateBatch(ctx context.Context, articles []domain.Article) (inserted int, err error) {
	if len(articles) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO articles (
			id, title, url, content, image_url, excerpt, date_added, published,
			is_favorite, is_read_later, is_read, tags, source, feed_url, feed_title
		) VALUES (
			:id, :title, :url, :content, :image_url, :excerpt, :date_added, :published,
			:is_favorite, :is_read_later, :is_read, :tags, :source, :feed_url, :feed_title
		) ON CONFLICT (url) DO NOTHING`

	err = withRetry(ctx, func() error {
		inserted = 0
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin article tx: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		for i := range articles {
			res, err := tx.NamedExecContext(ctx, query, toArticleSQL(&articles[i]))
			if err != nil {
				return fmt.Errorf("insert article %s: %w", articles[i].URL, err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("article rows affected: %w", err)
			}
			inserted += int(affected)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit article tx: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Get retrieves an article by ID
func (r *ArticleRepository) Get(ctx context.Context, id string) (*domain.Article, error) {
	var row articleSQL
	query := r.db.Rebind("SELECT * FROM articles WHERE id = ?")
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	article := toDomainArticle(&row)
	return &article, nil
}

// List returns all articles, newest first
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM articles ORDER BY date_added DESC"); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, len(rows))
	for i := range rows {
		articles[i] = toDomainArticle(&rows[i])
	}
	return articles, nil
}

// SetFlag updates one of the user flags (is_favorite, is_read_later,
// is_read) on an article
func (r *ArticleRepository) SetFlag(ctx context.Context, id, flag string, value bool) error {
	var column string
	switch flag {
	case "favorite":
		column = "is_favorite"
	case "readlater":
		column = "is_read_later"
	case "read":
		column = "is_read"
	default:
		return fmt.Errorf("article flag %q: %w", flag, domain.ErrUnknownFlag)
	}

	query := r.db.Rebind(fmt.Sprintf("UPDATE articles SET %s = ? WHERE id = ?", column))
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, value, id)
		if err != nil {
			return fmt.Errorf("set article %s: %w", flag, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("set flag affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// UpdateContent replaces the article body after an explicit re-extraction
func (r *ArticleRepository) UpdateContent(ctx context.Context, id, content, imageURL, excerpt string) error {
	query := r.db.Rebind("UPDATE articles SET content = ?, image_url = ?, excerpt = ? WHERE id = ?")
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, content, imageURL, excerpt, id); err != nil {
			return fmt.Errorf("update article content: %w", err)
		}
		return nil
	})
}

// Delete removes an article
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM articles WHERE id = ?")
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, id)
		if err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete article affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// UnreadFeedCount counts unread articles that came from feeds; the badge
// shows this number
func (r *ArticleRepository) UnreadFeedCount(ctx context.Context) (int, error) {
	var count int
	query := r.db.Rebind("SELECT COUNT(*) FROM articles WHERE is_read = ? AND source = ?")
	if err := r.db.GetContext(ctx, &count, query, false, string(domain.SourceFeed)); err != nil {
		return 0, fmt.Errorf("count unread articles: %w", err)
	}
	return count, nil
}

// toArticleSQL converts a domain article for SQL operations
func toArticleSQL(a *domain.Article) *articleSQL {
	return &articleSQL{
		ID:          a.ID,
		Title:       a.Title,
		URL:         a.URL,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		Excerpt:     a.Excerpt,
		DateAdded:   a.DateAdded,
		Published:   a.Published,
		IsFavorite:  a.IsFavorite,
		IsReadLater: a.IsReadLater,
		IsRead:      a.IsRead,
		Tags:        tagsSQL(a.Tags),
		Source:      string(a.Source),
		FeedURL:     a.FeedURL,
		FeedTitle:   a.FeedTitle,
	}
}

// toDomainArticle converts a SQL row back to the domain shape
func toDomainArticle(row *articleSQL) domain.Article {
	return domain.Article{
		ID:          row.ID,
		Title:       row.Title,
		URL:         row.URL,
		Content:     row.Content,
		ImageURL:    row.ImageURL,
		Excerpt:     row.Excerpt,
		DateAdded:   row.DateAdded,
		Published:   row.Published,
		IsFavorite:  row.IsFavorite,
		IsReadLater: row.IsReadLater,
		IsRead:      row.IsRead,
		Tags:        []string(row.Tags),
		Source:      domain.ArticleSource(row.Source),
		FeedURL:     row.FeedURL,
		FeedTitle:   row.FeedTitle,
	}
}
