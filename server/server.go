package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedclip/feedclip/pkg/content"
	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/rules"
	"github.com/feedclip/feedclip/pkg/scheduler"
)

//go:generate moq -out mocks/subscription_store.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionStore
//go:generate moq -out mocks/item_store.go -pkg mocks -skip-ensure -fmt goimports . ItemStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/ledger_store.go -pkg mocks -skip-ensure -fmt goimports . LedgerStore
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . Resolver
//go:generate moq -out mocks/catalog_loader.go -pkg mocks -skip-ensure -fmt goimports . CatalogLoader

// SubscriptionStore provides subscription persistence
type SubscriptionStore interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	Get(ctx context.Context, url string) (*domain.Subscription, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Rename(ctx context.Context, url, title string) error
	Delete(ctx context.Context, url string) error
}

// ItemStore provides access to the raw item cache
type ItemStore interface {
	Snapshot(ctx context.Context) ([]domain.RawItem, error)
	MarkRead(ctx context.Context, key domain.ItemKey) error
	DeleteByFeed(ctx context.Context, feedURL string) error
}

// ArticleStore provides saved article persistence
type ArticleStore interface {
	List(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	SetFlag(ctx context.Context, id, flag string, value bool) error
	UpdateContent(ctx context.Context, id, content, imageURL, excerpt string) error
	CreateBatch(ctx context.Context, articles []domain.Article) (int, error)
	Exists(ctx context.Context, url string) (bool, error)
	UnreadFeedCount(ctx context.Context) (int, error)
}

// LedgerStore provides fetch ledger maintenance
type LedgerStore interface {
	Delete(ctx context.Context, feedURL string) error
}

// Scheduler drives ingestion on demand
type Scheduler interface {
	Refresh(ctx context.Context, force bool) domain.IngestResult
	Trigger(force bool)
	Subscribe() (<-chan scheduler.Event, func())
}

// Extractor pulls readable content from a page, used for manual saves and
// explicit article refresh
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (*content.ExtractResult, error)
}

// Resolver maps a page URL to feed candidates
type Resolver interface {
	Resolve(pageURL string, detected []domain.FeedCandidate, catalog rules.Catalog) []domain.FeedCandidate
}

// CatalogLoader supplies the current route-rule catalog
type CatalogLoader interface {
	Load(ctx context.Context) rules.Catalog
}

// Config holds the server's own settings
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server is the REST surface over the feed pipeline
type Server struct {
	config    Config
	subs      SubscriptionStore
	items     ItemStore
	articles  ArticleStore
	ledger    LedgerStore
	scheduler Scheduler
	extractor Extractor
	resolver  Resolver
	catalog   CatalogLoader

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deps bundles the server's collaborators
type Deps struct {
	Subscriptions SubscriptionStore
	Items         ItemStore
	Articles      ArticleStore
	Ledger        LedgerStore
	Scheduler     Scheduler
	Extractor     Extractor
	Resolver      Resolver
	Catalog       CatalogLoader
}

// New initializes a new server instance
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		config:    cfg,
		subs:      deps.Subscriptions,
		items:     deps.Items,
		articles:  deps.Articles,
		ledger:    deps.Ledger,
		scheduler: deps.Scheduler,
		extractor: deps.Extractor,
		resolver:  deps.Resolver,
		catalog:   deps.Catalog,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:        s.config.Listen,
		Handler:     s.router,
		ReadTimeout: s.config.Timeout,
		// no write timeout, the SSE stream stays open indefinitely
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedclip", "feedclip", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /resolve", s.resolveHandler)
		r.HandleFunc("GET /badge", s.badgeHandler)

		r.HandleFunc("GET /subscriptions", s.listSubscriptionsHandler)
		r.HandleFunc("POST /subscriptions", s.subscribeHandler)
		r.HandleFunc("PATCH /subscriptions", s.renameSubscriptionHandler)
		r.HandleFunc("DELETE /subscriptions", s.unsubscribeHandler)

		r.HandleFunc("POST /refresh", s.refreshHandler)
		r.HandleFunc("GET /items", s.itemsHandler)
		r.HandleFunc("POST /items/read", s.markItemReadHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("POST /articles", s.saveArticleHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("DELETE /articles/{id}", s.deleteArticleHandler)
		r.HandleFunc("POST /articles/{id}/{flag}", s.articleFlagHandler)
		r.HandleFunc("POST /articles/{id}/refresh", s.refreshArticleHandler)

		r.HandleFunc("GET /events", s.eventsHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
