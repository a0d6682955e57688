package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/feedclip/feedclip/pkg/config"
	"github.com/feedclip/feedclip/pkg/content"
	"github.com/feedclip/feedclip/pkg/discover"
	"github.com/feedclip/feedclip/pkg/feed"
	"github.com/feedclip/feedclip/pkg/repository"
	"github.com/feedclip/feedclip/pkg/rules"
	"github.com/feedclip/feedclip/pkg/scheduler"
	"github.com/feedclip/feedclip/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	lgr.Printf("[INFO] starting feedclip version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, &opts); err != nil {
		lgr.Printf("[ERROR] feedclip failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	lgr.Printf("[INFO] shutdown complete")
}

// run loads the config, wires the pipeline and serves until ctx is canceled
func run(ctx context.Context, opts *Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close storage: %v", err)
		}
	}()

	fetcher := feed.NewHTTPFetcher(cfg.Extraction.Timeout, cfg.Extraction.UserAgent)
	extractor := content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MinTextLength)
	loader := rules.NewLoader(cfg.Rules.CatalogURL, cfg.Rules.TTL, cfg.Rules.Timeout, repos.Setting)

	interval := time.Duration(cfg.Schedule.UpdateInterval) * time.Minute
	pipeline := scheduler.NewPipeline(scheduler.PipelineConfig{
		Subscriptions: repos.Subscription,
		Cache:         repos.Cache,
		Ledger:        repos.Ledger,
		Fetcher:       fetcher,
		Promoter:      scheduler.NewPromoter(repos.Article, repos.Cache, extractor),
		Interval:      interval,
		MaxWorkers:    cfg.Schedule.MaxWorkers,
	})
	sched := scheduler.New(pipeline, interval)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, server.Deps{
		Subscriptions: repos.Subscription,
		Items:         repos.Cache,
		Articles:      repos.Article,
		Ledger:        repos.Ledger,
		Scheduler:     sched,
		Extractor:     extractor,
		Resolver:      discover.New(),
		Catalog:       loader,
	})

	return srv.Run(ctx)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
