package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedclip/feedclip/pkg/domain"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Run("valid rss feed", func(t *testing.T) {
		rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
	<channel>
		<title>Test Feed</title>
		<link>https://example.com</link>
		<description>Test feed description</description>
		<item>
			<title>Test Article 1</title>
			<link>https://example.com/article1</link>
			<description>Article 1 description</description>
			<guid>article1</guid>
			<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		</item>
		<item>
			<title>Test Article 2</title>
			<link>https://example.com/article2</link>
			<description>Article 2 description</description>
			<content:encoded><![CDATA[<p>Article 2 content</p>]]></content:encoded>
			<guid>article2</guid>
			<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
		</item>
	</channel>
</rss>`

		var gotBust string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBust = r.URL.Query().Get("_")
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(rssContent))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "feedclip/1.0")
		parsed, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "Test Feed", parsed.Title)
		require.Len(t, parsed.Entries, 2)

		// cache-busting parameter appended to the request
		assert.NotEmpty(t, gotBust)

		assert.Equal(t, "Test Article 1", parsed.Entries[0].Title)
		assert.Equal(t, "https://example.com/article1", parsed.Entries[0].Link)
		assert.Equal(t, "article1", parsed.Entries[0].GUID)
		assert.False(t, parsed.Entries[0].Published.IsZero())

		assert.Equal(t, "<p>Article 2 content</p>", parsed.Entries[1].Content)
	})

	t.Run("guid falls back to link", func(t *testing.T) {
		rssContent := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>F</title>
<item><title>No guid</title><link>https://example.com/x</link></item>
</channel></rss>`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(rssContent))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "feedclip/1.0")
		parsed, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		require.Len(t, parsed.Entries, 1)
		assert.Equal(t, "https://example.com/x", parsed.Entries[0].GUID)
		assert.True(t, parsed.Entries[0].Published.IsZero(), "missing date stays zero")
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "feedclip/1.0")
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(10*time.Millisecond, "feedclip/1.0")
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("malformed xml", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not xml at all"))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "feedclip/1.0")
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})
}

func TestNormalize(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sub := domain.Subscription{URL: "https://a.example/feed.xml", Title: "Renamed Title"}

	entries := []Entry{
		{GUID: "g1", Title: "One", Link: "https://a.example/1", Description: "d1", Published: now.Add(-time.Hour)},
		{GUID: "g2", Title: "Two", Link: "https://a.example/2", Content: "<p>full</p>"},
	}

	items := Normalize(entries, sub, now)
	require.Len(t, items, 2)

	// feed title comes from the subscription, not the document
	assert.Equal(t, "Renamed Title", items[0].FeedTitle)
	assert.Equal(t, "https://a.example/feed.xml", items[0].FeedURL)
	assert.Equal(t, now, items[0].FetchedAt)
	assert.False(t, items[0].IsRead)
	assert.Empty(t, items[0].ReadabilityContent)

	assert.Equal(t, "<p>full</p>", items[1].Content)
	assert.True(t, items[1].Published.IsZero())
}
