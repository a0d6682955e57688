package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/feedclip/feedclip/pkg/badge"
	"github.com/feedclip/feedclip/pkg/content"
	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/metrics"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.config.Version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// resolveHandler maps a page URL to feed candidates. Detected feeds from the
// caller come in the comma-separated "feeds" parameter and always lead the
// response. An unusable page URL yields an empty list, not an error.
func (s *Server) resolveHandler(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	detected := detectedCandidates(r.URL.Query().Get("feeds"))

	catalog := s.catalog.Load(r.Context())
	candidates := s.resolver.Resolve(pageURL, detected, catalog)

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"candidates": toCandidatesJSON(candidates),
	})
}

// badgeHandler derives the badge state for a page: unsubscribed detected
// feeds win over the unread count
func (s *Server) badgeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	detected := detectedCandidates(r.URL.Query().Get("feeds"))

	if pageURL := r.URL.Query().Get("url"); pageURL != "" {
		catalog := s.catalog.Load(ctx)
		detected = s.resolver.Resolve(pageURL, detected, catalog)
	}

	subs, err := s.subs.List(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list subscriptions: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	unread, err := s.articles.UnreadFeedCount(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to count unread articles: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	state := badge.Derive(detected, subs, unread)
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"kind":  string(state.Kind),
		"count": state.Count,
	})
}

// listSubscriptionsHandler returns all subscriptions ordered by title
func (s *Server) listSubscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	subs, err := s.subs.List(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list subscriptions: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, toSubscriptionsJSON(subs))
}

// subscribeHandler adds a feed subscription and schedules its first fetch
func (s *Server) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if !validFeedURL(req.URL) {
		RenderError(w, r, fmt.Errorf("invalid feed url"), http.StatusBadRequest)
		return
	}

	sub := domain.Subscription{URL: req.URL, Title: req.Title, SubscribedAt: time.Now()}
	if err := s.subs.Create(r.Context(), &sub); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			RenderError(w, r, err, http.StatusConflict)
			return
		}
		lgr.Printf("[ERROR] failed to create subscription %s: %v", req.URL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.scheduler.Trigger(false) // new feed has no ledger entry, it is due immediately
	RenderJSON(w, r, http.StatusCreated, toSubscriptionJSON(sub))
}

// renameSubscriptionHandler updates a subscription title. Cached items carry
// the title per fetch, so the new name applies to past items on the next read.
func (s *Server) renameSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" || req.Title == "" {
		RenderError(w, r, fmt.Errorf("url and title are required"), http.StatusBadRequest)
		return
	}

	if err := s.subs.Rename(r.Context(), req.URL, req.Title); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to rename subscription %s: %v", req.URL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.scheduler.Trigger(true) // re-fetch so cached items pick up the new title
	RenderJSON(w, r, http.StatusOK, map[string]string{"url": req.URL, "title": req.Title})
}

// unsubscribeHandler removes a subscription and prunes its cached items and
// ledger entry. Promoted articles stay.
func (s *Server) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	feedURL := r.URL.Query().Get("url")
	if feedURL == "" {
		RenderError(w, r, fmt.Errorf("url parameter is required"), http.StatusBadRequest)
		return
	}

	if err := s.subs.Delete(ctx, feedURL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to delete subscription %s: %v", feedURL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.items.DeleteByFeed(ctx, feedURL); err != nil {
		lgr.Printf("[WARN] failed to prune cached items for %s: %v", feedURL, err)
	}
	if err := s.ledger.Delete(ctx, feedURL); err != nil {
		lgr.Printf("[WARN] failed to prune ledger entry for %s: %v", feedURL, err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// refreshHandler runs an ingestion batch synchronously and reports counts.
// force=true ignores the per-feed rate window.
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	result := s.scheduler.Refresh(r.Context(), force)
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"feeds_checked":  result.FeedsChecked,
		"feeds_fetched":  result.FeedsFetched,
		"feeds_failed":   result.FeedsFailed,
		"new_items":      result.NewItems,
		"promoted":       result.Promoted,
		"persist_errors": result.PersistErrors,
	})
}

// itemsHandler returns the cache snapshot, newest first
func (s *Server) itemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.Snapshot(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to read cache snapshot: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, toItemsJSON(items))
}

// markItemReadHandler flags a cached item as read. The flag survives future
// re-fetches of the feed.
func (s *Server) markItemReadHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GUID    string `json:"guid"`
		FeedURL string `json:"feed_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.GUID == "" || req.FeedURL == "" {
		RenderError(w, r, fmt.Errorf("guid and feed_url are required"), http.StatusBadRequest)
		return
	}

	if err := s.items.MarkRead(r.Context(), domain.ItemKey{GUID: req.GUID, FeedURL: req.FeedURL}); err != nil {
		lgr.Printf("[ERROR] failed to mark item read: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listArticlesHandler returns saved articles, newest first
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := s.articles.List(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, toArticlesJSON(articles))
}

// getArticleHandler returns one article with full content
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get article: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, toArticleJSON(*article))
}

// deleteArticleHandler removes a saved article. The URL stays known to the
// promotion guard, so the article is not re-created by later batches.
func (s *Server) deleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.articles.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to delete article: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// articleFlagHandler sets one of the per-article flags: favorite, readlater
// or read. Body {"value": bool} defaults to true when omitted.
func (s *Server) articleFlagHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	flag := r.PathValue("flag")

	req := struct {
		Value *bool `json:"value"`
	}{}
	if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
			return
		}
	}
	value := true
	if req.Value != nil {
		value = *req.Value
	}

	if err := s.articles.SetFlag(r.Context(), id, flag, value); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			RenderError(w, r, err, http.StatusNotFound)
		case errors.Is(err, domain.ErrUnknownFlag):
			RenderError(w, r, err, http.StatusBadRequest)
		default:
			lgr.Printf("[ERROR] failed to set %s flag on article %s: %v", flag, id, err)
			RenderError(w, r, err, http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// refreshArticleHandler re-extracts an article's content from its URL
func (s *Server) refreshArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	article, err := s.articles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res, err := s.extractor.Extract(ctx, article.URL)
	if err != nil {
		lgr.Printf("[WARN] re-extraction failed for %s: %v", article.URL, err)
		metrics.ExtractionFailuresTotal.Inc()
		RenderError(w, r, fmt.Errorf("content extraction failed: %w", err), http.StatusBadGateway)
		return
	}

	excerpt := content.Snippet(res.Excerpt, 200)
	image := content.AbsoluteURL(article.URL, res.Image)
	if image == "" {
		image = content.AbsoluteURL(article.URL, res.Banner)
	}
	if err := s.articles.UpdateContent(ctx, id, res.ContentHTML, image, excerpt); err != nil {
		lgr.Printf("[ERROR] failed to update article content: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	updated, err := s.articles.Get(ctx, id)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, toArticleJSON(*updated))
}

// saveArticleHandler stores a page as an article directly, bypassing feeds.
// Used by the save-current-page action.
func (s *Server) saveArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if !validFeedURL(req.URL) {
		RenderError(w, r, fmt.Errorf("invalid article url"), http.StatusBadRequest)
		return
	}

	exists, err := s.articles.Exists(ctx, req.URL)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if exists {
		RenderError(w, r, fmt.Errorf("article already saved"), http.StatusConflict)
		return
	}

	res, err := s.extractor.Extract(ctx, req.URL)
	if err != nil {
		lgr.Printf("[WARN] extraction failed for manual save %s: %v", req.URL, err)
		metrics.ExtractionFailuresTotal.Inc()
		RenderError(w, r, fmt.Errorf("content extraction failed: %w", err), http.StatusUnprocessableEntity)
		return
	}

	image := content.AbsoluteURL(req.URL, res.Image)
	if image == "" {
		image = content.AbsoluteURL(req.URL, res.Banner)
	}
	article := domain.Article{
		ID:        uuid.NewString(),
		Title:     res.Title,
		URL:       req.URL,
		Content:   res.ContentHTML,
		ImageURL:  image,
		Excerpt:   content.Snippet(res.Excerpt, 200),
		DateAdded: time.Now(),
		Tags:      []string{},
		Source:    domain.SourceManual,
	}
	if article.Title == "" {
		article.Title = req.URL
	}

	if _, err := s.articles.CreateBatch(ctx, []domain.Article{article}); err != nil {
		lgr.Printf("[ERROR] failed to save article %s: %v", req.URL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	metrics.ArticlesPromotedTotal.WithLabelValues(string(domain.SourceManual)).Inc()

	RenderJSON(w, r, http.StatusCreated, toArticleJSON(article))
}

// detectedCandidates turns a comma-separated URL list into standard candidates
func detectedCandidates(param string) []domain.FeedCandidate {
	if param == "" {
		return nil
	}
	var res []domain.FeedCandidate
	for _, u := range strings.Split(param, ",") {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		res = append(res, domain.FeedCandidate{URL: u, Kind: domain.KindStandard})
	}
	return res
}

// validFeedURL accepts absolute http(s) URLs only
func validFeedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
