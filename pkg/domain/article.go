package domain

import "time"

// ArticleSource indicates how an article entered the store
type ArticleSource string

// article sources
const (
	SourceFeed   ArticleSource = "feed"
	SourceManual ArticleSource = "manual"
)

// Article is a durable saved-article record promoted from a feed entry or
// saved manually. Created at most once per URL; the ID is generated once and
// never changes.
type Article struct {
	ID          string
	Title       string
	URL         string
	Content     string
	ImageURL    string
	Excerpt     string
	DateAdded   time.Time
	Published   time.Time
	IsFavorite  bool
	IsReadLater bool
	IsRead      bool
	Tags        []string
	Source      ArticleSource
	FeedURL     string
	FeedTitle   string
}
