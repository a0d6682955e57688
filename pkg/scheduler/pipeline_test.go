package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedclip/feedclip/pkg/content"
	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/feed"
	"github.com/feedclip/feedclip/pkg/scheduler/mocks"
)

func testPipeline(t *testing.T, cfg PipelineConfig) *Pipeline {
	t.Helper()
	if cfg.Promoter == nil {
		articles := &mocks.ArticleStoreMock{
			ExistsFunc: func(ctx context.Context, url string) (bool, error) { return true, nil },
			CreateBatchFunc: func(ctx context.Context, articles []domain.Article) (int, error) {
				return len(articles), nil
			},
		}
		cache := &mocks.CacheStoreMock{
			SetReadabilityContentFunc: func(ctx context.Context, key domain.ItemKey, content string) error { return nil },
		}
		extractor := &mocks.ExtractorMock{
			SanitizeFunc: func(rawHTML string) string { return rawHTML },
		}
		cfg.Promoter = NewPromoter(articles, cache, extractor)
	}
	return NewPipeline(cfg)
}

func TestPipeline_Run(t *testing.T) {
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			return []domain.Subscription{
				{URL: "https://a.example.com/feed", Title: "Feed A"},
				{URL: "https://b.example.com/feed", Title: "Feed B"},
			}, nil
		},
	}
	ledger := &mocks.LedgerMock{
		GetFunc: func(ctx context.Context, feedURL string) (time.Time, bool, error) {
			return time.Time{}, false, nil // never fetched, everything due
		},
		SetFunc: func(ctx context.Context, feedURL string, tm time.Time) error { return nil },
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, feedURL string) (*feed.ParsedFeed, error) {
			return &feed.ParsedFeed{
				Title: "some feed",
				Entries: []feed.Entry{
					{GUID: feedURL + "/1", Title: "post one", Link: feedURL + "/1", Published: time.Now()},
				},
			}, nil
		},
	}
	cache := &mocks.CacheStoreMock{
		MergeFunc: func(ctx context.Context, items []domain.RawItem) (int, error) { return len(items), nil },
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) { return nil, nil },
		SetReadabilityContentFunc: func(ctx context.Context, key domain.ItemKey, content string) error {
			return nil
		},
	}

	p := testPipeline(t, PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Interval: time.Hour, MaxWorkers: 2,
	})

	result, _ := p.Run(context.Background(), false)
	assert.Equal(t, 2, result.FeedsChecked)
	assert.Equal(t, 2, result.FeedsFetched)
	assert.Equal(t, 0, result.FeedsFailed)
	assert.Equal(t, 2, result.NewItems)
	assert.Len(t, fetcher.FetchCalls(), 2)
	assert.Len(t, ledger.SetCalls(), 2, "ledger advanced for both feeds")
}

func TestPipeline_Run_rateWindow(t *testing.T) {
	now := time.Now()
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			return []domain.Subscription{
				{URL: "https://fresh.example.com/feed"},
				{URL: "https://stale.example.com/feed"},
			}, nil
		},
	}
	ledger := &mocks.LedgerMock{
		GetFunc: func(ctx context.Context, feedURL string) (time.Time, bool, error) {
			if feedURL == "https://fresh.example.com/feed" {
				return now.Add(-time.Minute), true, nil // inside the half-interval window
			}
			return now.Add(-45 * time.Minute), true, nil
		},
		SetFunc: func(ctx context.Context, feedURL string, tm time.Time) error { return nil },
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, feedURL string) (*feed.ParsedFeed, error) {
			return &feed.ParsedFeed{}, nil
		},
	}
	cache := &mocks.CacheStoreMock{
		MergeFunc:    func(ctx context.Context, items []domain.RawItem) (int, error) { return 0, nil },
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) { return nil, nil },
	}

	p := testPipeline(t, PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Interval: time.Hour, MaxWorkers: 1,
	})

	result, _ := p.Run(context.Background(), false)
	assert.Equal(t, 1, result.FeedsFetched, "only the stale feed is due")
	require.Len(t, fetcher.FetchCalls(), 1)
	assert.Equal(t, "https://stale.example.com/feed", fetcher.FetchCalls()[0].FeedURL)

	// force overrides the window
	result, _ = p.Run(context.Background(), true)
	assert.Equal(t, 2, result.FeedsFetched)
}

func TestPipeline_Run_failureIsolation(t *testing.T) {
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			return []domain.Subscription{
				{URL: "https://broken.example.com/feed"},
				{URL: "https://ok.example.com/feed"},
			}, nil
		},
	}
	var ledgerSets []string
	var ledgerMu sync.Mutex
	ledger := &mocks.LedgerMock{
		GetFunc: func(ctx context.Context, feedURL string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
		SetFunc: func(ctx context.Context, feedURL string, tm time.Time) error {
			ledgerMu.Lock()
			defer ledgerMu.Unlock()
			ledgerSets = append(ledgerSets, feedURL)
			return nil
		},
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, feedURL string) (*feed.ParsedFeed, error) {
			if feedURL == "https://broken.example.com/feed" {
				return nil, errors.New("connection refused")
			}
			return &feed.ParsedFeed{Entries: []feed.Entry{{GUID: "g1", Link: "https://ok.example.com/1"}}}, nil
		},
	}
	cache := &mocks.CacheStoreMock{
		MergeFunc:    func(ctx context.Context, items []domain.RawItem) (int, error) { return len(items), nil },
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) { return nil, nil },
	}

	p := testPipeline(t, PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Interval: time.Hour, MaxWorkers: 2,
	})

	result, _ := p.Run(context.Background(), false)
	assert.Equal(t, 1, result.FeedsFailed)
	assert.Equal(t, 1, result.FeedsFetched)
	assert.Equal(t, 1, result.NewItems)
	assert.Equal(t, []string{"https://ok.example.com/feed"}, ledgerSets,
		"failed feed's ledger entry must not advance")
}

func TestPipeline_Run_mergeFailureKeepsLedger(t *testing.T) {
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			return []domain.Subscription{{URL: "https://a.example.com/feed"}}, nil
		},
	}
	ledger := &mocks.LedgerMock{
		GetFunc: func(ctx context.Context, feedURL string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
		SetFunc: func(ctx context.Context, feedURL string, tm time.Time) error { return nil },
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, feedURL string) (*feed.ParsedFeed, error) {
			return &feed.ParsedFeed{Entries: []feed.Entry{{GUID: "g1", Link: "https://a.example.com/1"}}}, nil
		},
	}
	cache := &mocks.CacheStoreMock{
		MergeFunc:    func(ctx context.Context, items []domain.RawItem) (int, error) { return 0, errors.New("disk full") },
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) { return nil, nil },
	}

	p := testPipeline(t, PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Interval: time.Hour, MaxWorkers: 1,
	})

	result, _ := p.Run(context.Background(), false)
	assert.Equal(t, 1, result.FeedsFailed)
	assert.Empty(t, ledger.SetCalls(), "merge failure must not advance the ledger")
}

func TestPipeline_Run_serializedMerges(t *testing.T) {
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			res := make([]domain.Subscription, 10)
			for i := range res {
				res[i] = domain.Subscription{URL: "https://example.com/feed/" + string(rune('a'+i))}
			}
			return res, nil
		},
	}
	ledger := &mocks.LedgerMock{
		GetFunc: func(ctx context.Context, feedURL string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
		SetFunc: func(ctx context.Context, feedURL string, tm time.Time) error { return nil },
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, feedURL string) (*feed.ParsedFeed, error) {
			return &feed.ParsedFeed{}, nil
		},
	}

	var inMerge int32
	var mergeMu sync.Mutex
	cache := &mocks.CacheStoreMock{
		MergeFunc: func(ctx context.Context, items []domain.RawItem) (int, error) {
			mergeMu.Lock()
			inMerge++
			assert.Equal(t, int32(1), inMerge, "merges must not overlap")
			mergeMu.Unlock()
			time.Sleep(time.Millisecond)
			mergeMu.Lock()
			inMerge--
			mergeMu.Unlock()
			return 0, nil
		},
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) { return nil, nil },
	}

	p := testPipeline(t, PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Interval: time.Hour, MaxWorkers: 5,
	})

	result, _ := p.Run(context.Background(), false)
	assert.Equal(t, 10, result.FeedsFetched)
	assert.Len(t, cache.MergeCalls(), 10)
}

func TestPipeline_Run_promotes(t *testing.T) {
	sub := domain.Subscription{URL: "https://a.example.com/feed", SubscribedAt: time.Now().Add(-time.Hour)}
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			return []domain.Subscription{sub}, nil
		},
	}
	ledger := &mocks.LedgerMock{
		GetFunc: func(ctx context.Context, feedURL string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
		SetFunc: func(ctx context.Context, feedURL string, tm time.Time) error { return nil },
	}
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, feedURL string) (*feed.ParsedFeed, error) {
			return &feed.ParsedFeed{Entries: []feed.Entry{{
				GUID: "g1", Title: "fresh post", Link: "https://a.example.com/posts/1",
				Published: time.Now(),
				Content:   "<p>" + longText(300) + "</p>",
			}}}, nil
		},
	}
	cache := &mocks.CacheStoreMock{
		MergeFunc:    func(ctx context.Context, items []domain.RawItem) (int, error) { return len(items), nil },
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) { return nil, nil },
		SetReadabilityContentFunc: func(ctx context.Context, key domain.ItemKey, content string) error {
			return nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateBatchFunc: func(ctx context.Context, batch []domain.Article) (int, error) {
			return len(batch), nil
		},
	}
	extractor := &mocks.ExtractorMock{
		SanitizeFunc: func(rawHTML string) string { return rawHTML },
		ExtractFunc: func(ctx context.Context, urlStr string) (*content.ExtractResult, error) {
			t.Fatal("full feed content must not trigger extraction")
			return nil, nil
		},
	}

	p := NewPipeline(PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Promoter: NewPromoter(articles, cache, extractor),
		Interval: time.Hour, MaxWorkers: 1,
	})

	result, promoted := p.Run(context.Background(), false)
	assert.Equal(t, 1, result.Promoted)
	require.Len(t, promoted, 1)
	assert.Equal(t, "https://a.example.com/posts/1", promoted[0].URL)
	assert.Equal(t, domain.SourceFeed, promoted[0].Source)
}

func longText(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
