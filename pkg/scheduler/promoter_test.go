package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedclip/feedclip/pkg/content"
	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/scheduler/mocks"
)

func TestPromoter_PromoteBatch_dateFilter(t *testing.T) {
	subscribed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sub := domain.Subscription{URL: "https://example.com/feed", SubscribedAt: subscribed}

	items := []domain.RawItem{
		{GUID: "old", Link: "https://example.com/old", Published: subscribed.Add(-time.Hour)},
		{GUID: "new", Link: "https://example.com/new", Published: subscribed.Add(time.Hour)},
		{GUID: "exact", Link: "https://example.com/exact", Published: subscribed},
		{GUID: "undated", Link: "https://example.com/undated"}, // unparsable date, always eligible
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
			return nil, errors.New("no page")
		},
	}
	cache := &mocks.CacheStoreMock{}

	p := NewPromoter(articles, cache, extractor)
	batch, count, err := p.PromoteBatch(context.Background(), sub, items)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	urls := make([]string, len(batch))
	for i, a := range batch {
		urls[i] = a.URL
	}
	assert.NotContains(t, urls, "https://example.com/old")
	assert.Contains(t, urls, "https://example.com/new")
	assert.Contains(t, urls, "https://example.com/exact", "boundary date is eligible")
	assert.Contains(t, urls, "https://example.com/undated")
}

func TestPromoter_PromoteBatch_skipsExistingAndLinkless(t *testing.T) {
	sub := domain.Subscription{URL: "https://example.com/feed"}
	items := []domain.RawItem{
		{GUID: "seen", Link: "https://example.com/seen", Published: time.Now()},
		{GUID: "fresh", Link: "https://example.com/fresh", Published: time.Now()},
		{GUID: "nolink", Published: time.Now()},
	}

	articles := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, url string) (bool, error) {
			return url == "https://example.com/seen", nil
		},
		CreateBatchFunc: func(ctx context.Context, batch []domain.Article) (int, error) {
			return len(batch), nil
		},
	}
	extractor := &mocks.ExtractorMock{
		SanitizeFunc: func(rawHTML string) string { return rawHTML },
		ExtractFunc: func(ctx context.Context, urlStr string) (*content.ExtractResult, error) {
			return nil, errors.New("no page")
		},
	}

	p := NewPromoter(articles, &mocks.CacheStoreMock{}, extractor)
	batch, count, err := p.PromoteBatch(context.Background(), sub, items)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, batch, 1)
	assert.Equal(t, "https://example.com/fresh", batch[0].URL)
	assert.Len(t, articles.ExistsCalls(), 2, "linkless item skipped before the store lookup")
}

func TestPromoter_PromoteBatch_extractionChain(t *testing.T) {
	sub := domain.Subscription{URL: "https://example.com/feed"}
	item := domain.RawItem{
		GUID:        "g1",
		FeedURL:     sub.URL,
		FeedTitle:   "Example Feed",
		Title:       "short summary post",
		Link:        "https://example.com/posts/1",
		Published:   time.Now(),
		Description: "<p>just a teaser</p>",
	}

	articles := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateBatchFunc: func(ctx context.Context, batch []domain.Article) (int, error) {
			return len(batch), nil
		},
	}
	cache := &mocks.CacheStoreMock{
		SetReadabilityContentFunc: func(ctx context.Context, key domain.ItemKey, text string) error { return nil },
	}
	extractor := &mocks.ExtractorMock{
		SanitizeFunc: func(rawHTML string) string { return rawHTML },
		ExtractFunc: func(ctx context.Context, urlStr string) (*content.ExtractResult, error) {
			return &content.ExtractResult{
				Title:       "The Full Story",
				ContentHTML: "<article>the whole thing</article>",
				ContentText: "the whole thing",
				Excerpt:     "the whole thing, excerpted",
				Image:       "/img/lead.jpg",
			}, nil
		},
	}

	p := NewPromoter(articles, cache, extractor)
	batch, count, err := p.PromoteBatch(context.Background(), sub, []domain.RawItem{item})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, batch, 1)

	a := batch[0]
	assert.Equal(t, "The Full Story", a.Title, "extracted title wins over feed title")
	assert.Equal(t, "<article>the whole thing</article>", a.Content)
	assert.Equal(t, "the whole thing, excerpted", a.Excerpt)
	assert.Equal(t, "https://example.com/img/lead.jpg", a.ImageURL, "image resolved against the article link")
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Example Feed", a.FeedTitle)

	require.Len(t, cache.SetReadabilityContentCalls(), 1)
	assert.Equal(t, domain.ItemKey{GUID: "g1", FeedURL: sub.URL}, cache.SetReadabilityContentCalls()[0].Key)
	assert.Equal(t, "the whole thing", cache.SetReadabilityContentCalls()[0].Content)
}

func TestPromoter_PromoteBatch_descriptionFallback(t *testing.T) {
	sub := domain.Subscription{URL: "https://example.com/feed"}
	item := domain.RawItem{
		GUID:        "g1",
		Title:       "post with dead link",
		Link:        "https://example.com/posts/gone",
		Published:   time.Now(),
		Description: "<p>the <b>summary</b> text</p>",
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
			return nil, errors.New("404")
		},
	}

	p := NewPromoter(articles, &mocks.CacheStoreMock{}, extractor)
	batch, _, err := p.PromoteBatch(context.Background(), sub, []domain.RawItem{item})
	require.NoError(t, err)
	require.Len(t, batch, 1)

	a := batch[0]
	assert.Contains(t, a.Content, "the <b>summary</b> text")
	assert.Contains(t, a.Content, `href="https://example.com/posts/gone"`)
	assert.Contains(t, a.Content, "Read the original article")
	assert.Equal(t, "post with dead link", a.Title, "feed title kept when extraction fails")
	assert.Equal(t, "the summary text", a.Excerpt)
	assert.Empty(t, a.ImageURL)
}

func TestPromoter_PromoteBatch_fullFeedContent(t *testing.T) {
	sub := domain.Subscription{URL: "https://example.com/feed"}
	full := "<p>" + longText(400) + "</p>"
	item := domain.RawItem{
		GUID: "g1", Title: "full post", Link: "https://example.com/posts/1",
		Published: time.Now(), Content: full,
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
			t.Fatal("extraction must be skipped for full feed content")
			return nil, nil
		},
	}

	p := NewPromoter(articles, &mocks.CacheStoreMock{}, extractor)
	batch, _, err := p.PromoteBatch(context.Background(), sub, []domain.RawItem{item})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, full, batch[0].Content)
	assert.Len(t, extractor.SanitizeCalls(), 1)
}

func TestPromoter_PromoteBatch_storeError(t *testing.T) {
	sub := domain.Subscription{URL: "https://example.com/feed"}
	items := []domain.RawItem{{GUID: "g1", Link: "https://example.com/1", Published: time.Now()}}

	articles := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, url string) (bool, error) {
			return false, errors.New("db closed")
		},
	}
	p := NewPromoter(articles, &mocks.CacheStoreMock{}, &mocks.ExtractorMock{})
	_, _, err := p.PromoteBatch(context.Background(), sub, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check article")
}
