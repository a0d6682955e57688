package rules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
)

// settings keys for the cached remote catalog
const (
	settingCatalog   = "rules_catalog"
	settingFetchedAt = "rules_catalog_fetched"
)

// Store persists the raw catalog document between runs
type Store interface {
	GetSetting(ctx context.Context, name string) (string, error)
	SetSetting(ctx context.Context, name, value string) error
}

// Loader fetches the remote rule catalog and caches it with a freshness
// window. A stale or missing catalog degrades to whatever copy is available,
// never to an error the resolver has to care about.
type Loader struct {
	url     string
	ttl     time.Duration
	client  *http.Client
	store   Store
	builtin Catalog
}

// NewLoader creates a catalog loader. ttl defaults to 24h.
func NewLoader(catalogURL string, ttl time.Duration, timeout time.Duration, store Store) *Loader {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Loader{
		url:     catalogURL,
		ttl:     ttl,
		client:  &http.Client{Timeout: timeout},
		store:   store,
		builtin: builtinCatalog(),
	}
}

// Load returns the effective catalog: built-in generator rules overlaid with
// the remote catalog. The remote part comes from the local cache when fresh,
// is refetched when stale, and falls back to the stale copy (or nothing) when
// the refetch fails.
func (l *Loader) Load(ctx context.Context) Catalog {
	remote := l.remote(ctx)
	if remote == nil {
		return l.builtin
	}
	return l.builtin.Merge(remote)
}

// remote returns the remote catalog or nil when unavailable
func (l *Loader) remote(ctx context.Context) Catalog {
	if l.url == "" {
		return nil
	}

	cached, fetchedAt := l.cached(ctx)
	if cached != "" && time.Since(fetchedAt) < l.ttl {
		return l.parse(cached)
	}

	data, err := l.fetch(ctx)
	if err != nil {
		lgr.Printf("[WARN] rule catalog refresh failed, using cached copy: %v", err)
		if cached == "" {
			return nil
		}
		return l.parse(cached)
	}

	if err := l.store.SetSetting(ctx, settingCatalog, string(data)); err != nil {
		lgr.Printf("[WARN] failed to cache rule catalog: %v", err)
	}
	if err := l.store.SetSetting(ctx, settingFetchedAt, strconv.FormatInt(time.Now().Unix(), 10)); err != nil {
		lgr.Printf("[WARN] failed to store catalog timestamp: %v", err)
	}
	return l.parse(string(data))
}

// cached reads the stored catalog copy and its fetch time
func (l *Loader) cached(ctx context.Context) (string, time.Time) {
	data, err := l.store.GetSetting(ctx, settingCatalog)
	if err != nil || data == "" {
		return "", time.Time{}
	}
	tsStr, err := l.store.GetSetting(ctx, settingFetchedAt)
	if err != nil {
		return data, time.Time{}
	}
	ts, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return data, time.Time{}
	}
	return data, time.Unix(ts, 0)
}

// parse decodes catalog JSON, degrading to nil on malformed input
func (l *Loader) parse(data string) Catalog {
	catalog, err := ParseCatalog([]byte(data))
	if err != nil {
		lgr.Printf("[WARN] malformed rule catalog: %v", err)
		return nil
	}
	return catalog
}

// fetch retrieves the catalog document from the remote source
func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return data, nil
}
