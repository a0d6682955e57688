package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/feed"
	"github.com/feedclip/feedclip/pkg/metrics"
)

//go:generate moq -out mocks/subscription_store.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionStore
//go:generate moq -out mocks/cache_store.go -pkg mocks -skip-ensure -fmt goimports . CacheStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/ledger.go -pkg mocks -skip-ensure -fmt goimports . Ledger
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// SubscriptionStore provides the subscription set
type SubscriptionStore interface {
	List(ctx context.Context) ([]domain.Subscription, error)
}

// CacheStore is the raw item cache
type CacheStore interface {
	Merge(ctx context.Context, items []domain.RawItem) (int, error)
	Snapshot(ctx context.Context) ([]domain.RawItem, error)
	SetReadabilityContent(ctx context.Context, key domain.ItemKey, content string) error
}

// ArticleStore persists promoted articles
type ArticleStore interface {
	Exists(ctx context.Context, url string) (bool, error)
	CreateBatch(ctx context.Context, articles []domain.Article) (int, error)
}

// Ledger tracks last successful fetch per feed
type Ledger interface {
	Get(ctx context.Context, feedURL string) (time.Time, bool, error)
	Set(ctx context.Context, feedURL string, t time.Time) error
}

// Fetcher retrieves and parses feed documents
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*feed.ParsedFeed, error)
}

// Pipeline runs one ingestion batch: decide which subscriptions are due,
// fetch them with bounded parallelism, merge new readings into the cache and
// promote eligible items. Fetches run concurrently but merges are serialized
// through a single writer lock, and a feed's ledger entry moves forward only
// after its fetch, parse and merge all succeeded.
type Pipeline struct {
	subs     SubscriptionStore
	cache    CacheStore
	ledger   Ledger
	fetcher  Fetcher
	promoter *Promoter

	interval   time.Duration // nominal refresh interval; due at half of it
	maxWorkers int

	mergeMu sync.Mutex
}

// PipelineConfig holds dependencies and tuning for a pipeline
type PipelineConfig struct {
	Subscriptions SubscriptionStore
	Cache         CacheStore
	Ledger        Ledger
	Fetcher       Fetcher
	Promoter      *Promoter
	Interval      time.Duration
	MaxWorkers    int
}

// NewPipeline creates an ingestion pipeline
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Interval == 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	return &Pipeline{
		subs:       cfg.Subscriptions,
		cache:      cfg.Cache,
		ledger:     cfg.Ledger,
		fetcher:    cfg.Fetcher,
		promoter:   cfg.Promoter,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
	}
}

// Run executes one full batch. force fetches every subscription regardless
// of the rate window. Per-feed failures are counted, never propagated: the
// returned result reflects partial success.
func (p *Pipeline) Run(ctx context.Context, force bool) (domain.IngestResult, []domain.Article) {
	started := time.Now()
	defer func() { metrics.IngestDuration.Observe(time.Since(started).Seconds()) }()

	subscriptions, err := p.subs.List(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list subscriptions: %v", err)
		return domain.IngestResult{}, nil
	}

	lgr.Printf("[INFO] ingestion batch started, %d subscriptions, force=%v", len(subscriptions), force)

	var resMu sync.Mutex
	result := domain.IngestResult{FeedsChecked: len(subscriptions)}
	var promoted []domain.Article

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	for _, sub := range subscriptions {
		g.Go(func() error {
			outcome := p.processFeed(gctx, sub, force)

			resMu.Lock()
			defer resMu.Unlock()
			switch {
			case outcome.skipped:
				metrics.FeedFetchesTotal.WithLabelValues("skipped").Inc()
			case outcome.err != nil:
				result.FeedsFailed++
				metrics.FeedFetchesTotal.WithLabelValues("error").Inc()
			default:
				result.FeedsFetched++
				result.NewItems += outcome.newItems
				result.Promoted += outcome.promoted
				result.PersistErrors += outcome.persistErrors
				promoted = append(promoted, outcome.articles...)
				metrics.FeedFetchesTotal.WithLabelValues("ok").Inc()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] ingestion batch error: %v", err)
	}

	lgr.Printf("[INFO] ingestion batch completed: %d fetched, %d failed, %d new items, %d promoted",
		result.FeedsFetched, result.FeedsFailed, result.NewItems, result.Promoted)
	return result, promoted
}

// feedOutcome is the per-subscription result of one batch pass
type feedOutcome struct {
	skipped       bool
	err           error
	newItems      int
	promoted      int
	persistErrors int
	articles      []domain.Article
}

// processFeed handles one subscription end to end: rate window, fetch,
// normalize, merge, promote, ledger update
func (p *Pipeline) processFeed(ctx context.Context, sub domain.Subscription, force bool) feedOutcome {
	if !force && !p.due(ctx, sub.URL) {
		lgr.Printf("[DEBUG] feed not due, skipping: %s", sub.URL)
		return feedOutcome{skipped: true}
	}

	parsed, err := p.fetcher.Fetch(ctx, sub.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch feed %s: %v", sub.URL, err)
		return feedOutcome{err: err}
	}

	items := feed.Normalize(parsed.Entries, sub, time.Now())

	p.mergeMu.Lock()
	newCount, err := p.cache.Merge(ctx, items)
	p.mergeMu.Unlock()
	if err != nil {
		lgr.Printf("[WARN] failed to merge items for feed %s: %v", sub.URL, err)
		return feedOutcome{err: err}
	}
	metrics.ItemsMergedTotal.Add(float64(newCount))

	outcome := feedOutcome{newItems: newCount}

	// promotion failures surface in counts but never roll back the merge:
	// cache merge and promotion are independent failure domains
	articles, promotedCount, err := p.promoter.PromoteBatch(ctx, sub, items)
	if err != nil {
		lgr.Printf("[WARN] promotion failed for feed %s: %v", sub.URL, err)
		outcome.persistErrors++
	}
	outcome.promoted = promotedCount
	outcome.articles = articles

	// ledger moves only after a complete fetch+parse+merge, never optimistically
	if err := p.ledger.Set(ctx, sub.URL, time.Now()); err != nil {
		lgr.Printf("[WARN] failed to update ledger for feed %s: %v", sub.URL, err)
		outcome.persistErrors++
	}

	if newCount > 0 {
		lgr.Printf("[INFO] added %d new items from feed %s", newCount, sub.URL)
	}
	return outcome
}

// due reports whether a feed's rate window has elapsed. A ledger miss means
// fetch now.
func (p *Pipeline) due(ctx context.Context, feedURL string) bool {
	last, ok, err := p.ledger.Get(ctx, feedURL)
	if err != nil {
		lgr.Printf("[WARN] ledger read failed for %s, fetching anyway: %v", feedURL, err)
		return true
	}
	if !ok {
		return true
	}
	return time.Since(last) >= p.interval/2
}

// Snapshot exposes the current cache content, newest first
func (p *Pipeline) Snapshot(ctx context.Context) ([]domain.RawItem, error) {
	return p.cache.Snapshot(ctx)
}
