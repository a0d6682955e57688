package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedclip/feedclip/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestSubscriptionRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	sub := &domain.Subscription{
		URL:          "https://a.example/feed.xml",
		Title:        "A",
		SubscribedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.Subscription.Create(ctx, sub))

	t.Run("get and list", func(t *testing.T) {
		got, err := repos.Subscription.Get(ctx, sub.URL)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
		assert.True(t, got.SubscribedAt.Equal(sub.SubscribedAt))

		subs, err := repos.Subscription.List(ctx)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("duplicate url rejected", func(t *testing.T) {
		err := repos.Subscription.Create(ctx, sub)
		require.Error(t, err)
	})

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, repos.Subscription.Rename(ctx, sub.URL, "Renamed"))
		got, err := repos.Subscription.Get(ctx, sub.URL)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)

		err = repos.Subscription.Rename(ctx, "https://missing.example/feed", "X")
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Subscription.Delete(ctx, sub.URL))
		_, err := repos.Subscription.Get(ctx, sub.URL)
		require.Error(t, err)
	})
}

func TestCacheRepository_Merge(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	item := domain.RawItem{
		GUID: "g1", FeedURL: "https://a.example/feed.xml", FeedTitle: "A",
		Title: "One", Link: "https://a.example/1", Published: now.Add(-time.Hour),
		Description: "first reading", FetchedAt: now,
	}

	t.Run("insert new item", func(t *testing.T) {
		newCount, err := repos.Cache.Merge(ctx, []domain.RawItem{item})
		require.NoError(t, err)
		assert.Equal(t, 1, newCount)
	})

	t.Run("re-merge same item is not new", func(t *testing.T) {
		newCount, err := repos.Cache.Merge(ctx, []domain.RawItem{item})
		require.NoError(t, err)
		assert.Equal(t, 0, newCount)
	})

	t.Run("sticky fields survive updated reading", func(t *testing.T) {
		require.NoError(t, repos.Cache.MarkRead(ctx, item.Key()))
		require.NoError(t, repos.Cache.SetReadabilityContent(ctx, item.Key(), "extracted text"))

		updated := item
		updated.Description = "second reading"
		updated.FetchedAt = now.Add(time.Hour)

		newCount, err := repos.Cache.Merge(ctx, []domain.RawItem{updated})
		require.NoError(t, err)
		assert.Equal(t, 0, newCount)

		snapshot, err := repos.Cache.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot, 1)
		assert.Equal(t, "second reading", snapshot[0].Description)
		assert.True(t, snapshot[0].IsRead, "read state must survive re-fetch")
		assert.Equal(t, "extracted text", snapshot[0].ReadabilityContent)
	})

	t.Run("readability content set only once", func(t *testing.T) {
		require.NoError(t, repos.Cache.SetReadabilityContent(ctx, item.Key(), "other text"))
		snapshot, err := repos.Cache.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, "extracted text", snapshot[0].ReadabilityContent)
	})

	t.Run("snapshot ordered by published desc", func(t *testing.T) {
		newer := domain.RawItem{
			GUID: "g2", FeedURL: item.FeedURL, Title: "Two",
			Published: now, FetchedAt: now,
		}
		_, err := repos.Cache.Merge(ctx, []domain.RawItem{newer})
		require.NoError(t, err)

		snapshot, err := repos.Cache.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot, 2)
		assert.Equal(t, "g2", snapshot[0].GUID)
		assert.Equal(t, "g1", snapshot[1].GUID)
	})

	t.Run("delete by feed", func(t *testing.T) {
		require.NoError(t, repos.Cache.DeleteByFeed(ctx, item.FeedURL))
		snapshot, err := repos.Cache.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, snapshot)
	})
}

func TestArticleRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	article := domain.Article{
		ID: "id-1", Title: "One", URL: "https://a.example/1",
		Content: "<p>body</p>", DateAdded: now, Published: now.Add(-time.Hour),
		Source: domain.SourceFeed, FeedURL: "https://a.example/feed.xml", FeedTitle: "A",
	}

	t.Run("batch insert and url conflict skip", func(t *testing.T) {
		inserted, err := repos.Article.CreateBatch(ctx, []domain.Article{article})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)

		// same url again, different id: skipped, not an error
		dup := article
		dup.ID = "id-2"
		inserted, err = repos.Article.CreateBatch(ctx, []domain.Article{dup})
		require.NoError(t, err)
		assert.Equal(t, 0, inserted)

		exists, err := repos.Article.Exists(ctx, article.URL)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("flags", func(t *testing.T) {
		require.NoError(t, repos.Article.SetFlag(ctx, "id-1", "favorite", true))
		require.NoError(t, repos.Article.SetFlag(ctx, "id-1", "read", true))

		got, err := repos.Article.Get(ctx, "id-1")
		require.NoError(t, err)
		assert.True(t, got.IsFavorite)
		assert.True(t, got.IsRead)

		require.Error(t, repos.Article.SetFlag(ctx, "id-1", "bogus", true))
		require.Error(t, repos.Article.SetFlag(ctx, "missing", "read", true))
	})

	t.Run("unread feed count", func(t *testing.T) {
		second := domain.Article{
			ID: "id-3", URL: "https://a.example/2", DateAdded: now,
			Source: domain.SourceFeed,
		}
		manual := domain.Article{
			ID: "id-4", URL: "https://a.example/3", DateAdded: now,
			Source: domain.SourceManual,
		}
		_, err := repos.Article.CreateBatch(ctx, []domain.Article{second, manual})
		require.NoError(t, err)

		// id-1 is read; id-3 unread feed; id-4 manual does not count
		count, err := repos.Article.UnreadFeedCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("update content and delete", func(t *testing.T) {
		require.NoError(t, repos.Article.UpdateContent(ctx, "id-1", "<p>new</p>", "https://img.example/x.png", "new excerpt"))
		got, err := repos.Article.Get(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "<p>new</p>", got.Content)
		assert.Equal(t, "https://img.example/x.png", got.ImageURL)

		require.NoError(t, repos.Article.Delete(ctx, "id-1"))
		_, err = repos.Article.Get(ctx, "id-1")
		require.Error(t, err)
	})
}

func TestLedgerRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	feedURL := "https://a.example/feed.xml"

	t.Run("missing entry", func(t *testing.T) {
		_, ok, err := repos.Ledger.Get(ctx, feedURL)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, repos.Ledger.Set(ctx, feedURL, ts))

		got, ok, err := repos.Ledger.Get(ctx, feedURL)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, got.Equal(ts))

		// upsert replaces
		ts2 := ts.Add(time.Hour)
		require.NoError(t, repos.Ledger.Set(ctx, feedURL, ts2))
		got, _, err = repos.Ledger.Get(ctx, feedURL)
		require.NoError(t, err)
		assert.True(t, got.Equal(ts2))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Ledger.Delete(ctx, feedURL))
		_, ok, err := repos.Ledger.Get(ctx, feedURL)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	val, err := repos.Setting.GetSetting(ctx, "absent")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v1"))
	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v2"))

	val, err = repos.Setting.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
}
