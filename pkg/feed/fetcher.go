package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is one parsed feed entry, dialect-independent
type Entry struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string // full HTML when the feed supplies it
	Published   time.Time
}

// ParsedFeed is the result of fetching and parsing one feed document
type ParsedFeed struct {
	Title   string
	Link    string
	Entries []Entry
}

// HTTPFetcher fetches RSS/Atom feeds via HTTP and parses them with gofeed
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves and parses a feed. The request carries a cache-busting
// query parameter so intermediaries don't serve a stale document.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) (*ParsedFeed, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &ParsedFeed{
		Title:   parsed.Title,
		Link:    parsed.Link,
		Entries: make([]Entry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		entry := Entry{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
		}

		// set GUID with fallbacks
		switch {
		case item.GUID != "":
			entry.GUID = item.GUID
		case item.Link != "":
			entry.GUID = item.Link
		default:
			entry.GUID = fmt.Sprintf("%s-%s", parsed.Title, item.Title)
		}

		// published time stays zero when the feed has no parsable date
		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// fetch retrieves the raw feed document
func (f *HTTPFetcher) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	busted, err := cacheBust(feedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, busted, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// cacheBust appends a timestamp query parameter to the feed URL
func cacheBust(feedURL string) (string, error) {
	u, err := url.Parse(feedURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
