package scheduler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/feedclip/feedclip/pkg/content"
	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/metrics"
)

// Extractor pulls readable article content from a web page
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (*content.ExtractResult, error)
	Sanitize(rawHTML string) string
}

// Promoter turns eligible raw items into saved articles. An item is eligible
// when its publication date is on or after the subscription date, or when the
// date could not be parsed at all. Each URL is promoted at most once, ever:
// a deleted article is not resurrected by a later batch.
type Promoter struct {
	articles  ArticleStore
	cache     CacheStore
	extractor Extractor

	// feed-supplied content shorter than this is considered a summary and
	// triggers page extraction
	minFullContent int
}

// NewPromoter creates a promoter
func NewPromoter(articles ArticleStore, cache CacheStore, extractor Extractor) *Promoter {
	return &Promoter{
		articles:       articles,
		cache:          cache,
		extractor:      extractor,
		minFullContent: 200,
	}
}

// PromoteBatch evaluates a feed's items and writes the resulting articles as
// one atomic group. Returns the submitted articles and the number actually
// inserted; URLs already present in the store are skipped silently.
func (p *Promoter) PromoteBatch(ctx context.Context, sub domain.Subscription, items []domain.RawItem) ([]domain.Article, int, error) {
	var batch []domain.Article

	for _, item := range items {
		if item.Link == "" {
			continue
		}
		if !p.eligible(sub, item) {
			continue
		}

		exists, err := p.articles.Exists(ctx, item.Link)
		if err != nil {
			return nil, 0, fmt.Errorf("check article %s: %w", item.Link, err)
		}
		if exists {
			continue
		}

		batch = append(batch, p.buildArticle(ctx, item))
	}

	if len(batch) == 0 {
		return nil, 0, nil
	}

	inserted, err := p.articles.CreateBatch(ctx, batch)
	if err != nil {
		return nil, 0, fmt.Errorf("save articles: %w", err)
	}
	metrics.ArticlesPromotedTotal.WithLabelValues(string(domain.SourceFeed)).Add(float64(inserted))
	return batch, inserted, nil
}

// eligible applies the date filter. A zero Published means the feed's date
// was missing or unparsable; those items always pass.
func (p *Promoter) eligible(sub domain.Subscription, item domain.RawItem) bool {
	if item.Published.IsZero() {
		return true
	}
	return !item.Published.Before(sub.SubscribedAt)
}

// buildArticle resolves the content chain for one item: full feed content
// when present, extracted page content otherwise, wrapped description as the
// last resort. Extraction failures degrade, they never block promotion.
func (p *Promoter) buildArticle(ctx context.Context, item domain.RawItem) domain.Article {
	article := domain.Article{
		ID:        uuid.NewString(),
		Title:     item.Title,
		URL:       item.Link,
		Excerpt:   content.Snippet(html.UnescapeString(content.PlainText(item.Description)), 200),
		DateAdded: time.Now(),
		Published: item.Published,
		Tags:      []string{},
		Source:    domain.SourceFeed,
		FeedURL:   item.FeedURL,
		FeedTitle: item.FeedTitle,
	}

	if len(item.Content) >= p.minFullContent {
		article.Content = p.extractor.Sanitize(item.Content)
		return article
	}

	res, err := p.extractor.Extract(ctx, item.Link)
	if err != nil {
		lgr.Printf("[DEBUG] extraction failed for %s, using description: %v", item.Link, err)
		metrics.ExtractionFailuresTotal.Inc()
		article.Content = p.fallbackContent(item)
		return article
	}

	article.Content = res.ContentHTML
	if res.Title != "" {
		article.Title = res.Title
	}
	if res.Excerpt != "" {
		article.Excerpt = content.Snippet(res.Excerpt, 200)
	}
	if img := res.Image; img != "" {
		article.ImageURL = content.AbsoluteURL(item.Link, img)
	} else if res.Banner != "" {
		article.ImageURL = content.AbsoluteURL(item.Link, res.Banner)
	}

	// keep the extracted text on the cached item too, once
	if res.ContentText != "" {
		if err := p.cache.SetReadabilityContent(ctx, item.Key(), res.ContentText); err != nil {
			lgr.Printf("[WARN] failed to store readability content for %s: %v", item.Link, err)
		}
	}
	return article
}

// fallbackContent wraps the feed description into minimal readable HTML with
// a link back to the original page
func (p *Promoter) fallbackContent(item domain.RawItem) string {
	var b strings.Builder
	b.WriteString("<div>")
	b.WriteString(p.extractor.Sanitize(item.Description))
	b.WriteString(`<p><a href="`)
	b.WriteString(html.EscapeString(item.Link))
	b.WriteString(`">Read the original article</a></p></div>`)
	return b.String()
}
