package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/feed"
	"github.com/feedclip/feedclip/pkg/scheduler/mocks"
)

func schedulerFixture(t *testing.T, fetches *int64) *Scheduler {
	t.Helper()
	subs := &mocks.SubscriptionStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Subscription, error) {
			return []domain.Subscription{{URL: "https://example.com/feed", Title: "Example"}}, nil
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
			atomic.AddInt64(fetches, 1)
			return &feed.ParsedFeed{Entries: []feed.Entry{
				{GUID: "g1", Title: "post", Link: "https://example.com/1", Published: time.Now()},
			}}, nil
		},
	}
	cache := &mocks.CacheStoreMock{
		MergeFunc: func(ctx context.Context, items []domain.RawItem) (int, error) { return len(items), nil },
		SnapshotFunc: func(ctx context.Context) ([]domain.RawItem, error) {
			return []domain.RawItem{{GUID: "g1", FeedURL: "https://example.com/feed", Title: "post"}}, nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, url string) (bool, error) { return true, nil },
	}
	extractor := &mocks.ExtractorMock{
		SanitizeFunc: func(rawHTML string) string { return rawHTML },
	}

	p := NewPipeline(PipelineConfig{
		Subscriptions: subs, Cache: cache, Ledger: ledger, Fetcher: fetcher,
		Promoter: NewPromoter(articles, cache, extractor),
		Interval: time.Hour, MaxWorkers: 1,
	})
	return New(p, time.Hour)
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	var fetches int64
	s := schedulerFixture(t, &fetches)

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.Start(context.Background())
	defer s.Stop()

	select {
	case ev := <-ch:
		assert.Equal(t, 1, ev.Result.FeedsFetched)
		assert.Equal(t, 1, ev.Result.NewItems)
		require.Len(t, ev.Items, 1, "event carries the cache snapshot")
		assert.Equal(t, "post", ev.Items[0].Title)
	case <-time.After(5 * time.Second):
		t.Fatal("no event after startup batch")
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&fetches))
}

func TestScheduler_Refresh(t *testing.T) {
	var fetches int64
	s := schedulerFixture(t, &fetches)

	result := s.Refresh(context.Background(), true)
	assert.Equal(t, 1, result.FeedsChecked)
	assert.Equal(t, 1, result.FeedsFetched)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fetches))

	// second forced refresh fetches again, the window does not apply
	result = s.Refresh(context.Background(), true)
	assert.Equal(t, 1, result.FeedsFetched)
	assert.Equal(t, int64(2), atomic.LoadInt64(&fetches))
}

func TestScheduler_TriggerCoalesces(t *testing.T) {
	var fetches int64
	s := schedulerFixture(t, &fetches)

	// both land in the buffered trigger slot before the loop starts
	s.Trigger(false)
	s.Trigger(true)
	s.Trigger(true)

	s.Start(context.Background())

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&fetches) >= 1
	}, 5*time.Second, 10*time.Millisecond)
	s.Stop()

	// startup batch plus at most one coalesced trigger
	assert.LessOrEqual(t, atomic.LoadInt64(&fetches), int64(2))
}

func TestScheduler_UnsubscribeStopsDelivery(t *testing.T) {
	var fetches int64
	s := schedulerFixture(t, &fetches)

	ch, unsubscribe := s.Subscribe()
	unsubscribe()

	s.Refresh(context.Background(), true)

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("unexpected event after unsubscribe")
		}
	default:
	}
}
