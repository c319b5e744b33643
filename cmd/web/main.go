// cmd/web/main.go
//
// seoroute – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Bootstrap console logger so config errors are visible.
//
//  2. Load config (conf/.env → conf/global.yaml → SEO_* env).  When
//     VAULT_ADDR is set, “vault:” values are resolved through Vault.
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Validate the localized route table; refuse to boot on a collision.
//
//  5. Build the reference-data source (HTTP API or SQL), the optional
//     Redis snapshot store, and the Loader.  Warm the cache once and start
//     the background refresher.
//
//  6. Build the chi router:
//
//     • Security headers          – middleware.Security
//     • HTTPS redirect            – middleware.ForceHTTPS
//     • localized section rewrite – routing.Localize
//     • per-request info          – requestinfo.Enrich
//     • /metrics                  – promhttp
//     • components                – component.Mount (listing, requestinfo)
//
//  7. Serve until SIGINT or SIGTERM, then drain for shutdownGrace.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/seoroute/internal/component"
	"github.com/yanizio/seoroute/internal/config"
	"github.com/yanizio/seoroute/internal/database"
	"github.com/yanizio/seoroute/internal/logger"
	"github.com/yanizio/seoroute/internal/middleware"
	"github.com/yanizio/seoroute/internal/refdata"
	"github.com/yanizio/seoroute/internal/requestinfo"
	"github.com/yanizio/seoroute/internal/resolve"
	"github.com/yanizio/seoroute/internal/routing"
	"github.com/yanizio/seoroute/internal/server"
	"github.com/yanizio/seoroute/internal/vault"

	_ "github.com/yanizio/seoroute/components/listing"
	_ "github.com/yanizio/seoroute/components/requestinfo"
)

const (
	shutdownGrace = 15 * time.Second
	warmupTimeout = 10 * time.Second
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	if err := run(); err != nil {
		zap.S().Errorw("fatal", "err", err)
		_ = zap.L().Sync()
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Bootstrap logger ────────────────────────────────────────────
	//
	boot, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(boot)

	//
	// ── 2.  Config (+ Vault secrets) ────────────────────────────────────
	//
	var opts []config.Option
	if os.Getenv("VAULT_ADDR") != "" {
		vc, err := vault.New(ctx)
		if err != nil {
			return err
		}
		opts = append(opts, config.WithSecretResolver(ctx, vc.Resolve))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	//
	// ── 3.  File logger ─────────────────────────────────────────────────
	//
	logOut, err := logger.New(cfg.Paths.Root, cfg.Log.Level, runningInTTY())
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 4.  Route table sanity ──────────────────────────────────────────
	//
	if err := routing.ValidateRouteTable(cfg.Routing.ReservedPrefixes); err != nil {
		return err
	}

	//
	// ── 5.  Reference data ──────────────────────────────────────────────
	//
	src, closeSrc, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	lopts := refdata.Options{
		TTL:          cfg.Refdata.TTL,
		FetchTimeout: cfg.Refdata.FetchTimeout,
	}
	if cfg.Refdata.RedisAddr != "" {
		store := refdata.NewRedisStore(refdata.RedisOptions{
			Addr:     cfg.Refdata.RedisAddr,
			Password: cfg.Refdata.RedisPassword,
			DB:       cfg.Refdata.RedisDB,
			TTL:      cfg.Refdata.RedisTTL,
		})
		defer store.Close()
		if err := store.Ping(ctx); err != nil {
			logOut.Warnw("redis snapshot store unreachable; continuing without it", "addr", cfg.Refdata.RedisAddr, "err", err)
		} else {
			lopts.Store = store
		}
	}
	loader := refdata.NewLoader(src, lopts)

	warmCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
	if err := loader.Refresh(warmCtx); err != nil {
		logOut.Warnw("reference data warm-up failed; serving empty data until the next load", "err", err)
	}
	cancel()
	loader.StartRefresher(ctx, cfg.Refdata.TTL)

	//
	// ── 6.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(
		middleware.Security(cfg.HTTP.ForceHTTPS),
		middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS),
		routing.Localize(routing.Options{
			LangHeader: cfg.Routing.LangHeader,
			Exclude:    cfg.Routing.ExcludedPrefixes,
		}),
		requestinfo.Enrich,
	)
	r.Handle("/metrics", promhttp.Handler())

	err = component.Mount(r, component.Deps{
		Refdata: loader,
		Matcher: resolve.NewMatcher(cfg.Refdata.MemoSize),
		BaseURL: cfg.HTTP.PublicURL,
		Log:     logOut,
	})
	if err != nil {
		return err
	}
	logOut.Infow("components mounted", "names", component.AllNames())

	//
	// ── 7.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r, server.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})
	return server.Run(ctx, srv, shutdownGrace)
}

// newSource returns the configured reference-data source and its closer.
func newSource(ctx context.Context, cfg *config.Config) (refdata.Source, func(), error) {
	switch cfg.Refdata.Source {
	case "http":
		s := refdata.NewHTTPSource(cfg.Refdata.BaseURL, refdata.Endpoints{
			Categories:    cfg.Refdata.Endpoints.Categories,
			Subcategories: cfg.Refdata.Endpoints.Subcategories,
			Countries:     cfg.Refdata.Endpoints.Countries,
			Cities:        cfg.Refdata.Endpoints.Cities,
		})
		return s, func() { _ = s.Close() }, nil
	case "sql":
		db, err := database.Open(ctx, cfg.Database.ResolvedDSN())
		if err != nil {
			return nil, nil, err
		}
		return refdata.NewSQLSource(db), func() { _ = db.Close() }, nil
	}
	return nil, nil, errors.New("unknown refdata source " + cfg.Refdata.Source)
}
