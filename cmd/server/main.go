// Command server runs the Q&A browser backend: it loads the record
// collection, keeps it hot-reloaded from its source, and serves the browse,
// bookmark and preference API.
//
// @title        Law Q&A Browser API
// @version      1.0
// @description  Search, filter and bookmark a Bengali legal question-answer collection.
// @BasePath     /api/v1
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lawqa/go-lawqa-backend/internal/catalog"
	"github.com/lawqa/go-lawqa-backend/internal/config"
	httpapi "github.com/lawqa/go-lawqa-backend/internal/http"
	"github.com/lawqa/go-lawqa-backend/internal/observability"
	"github.com/lawqa/go-lawqa-backend/internal/reload"
	"github.com/lawqa/go-lawqa-backend/internal/repo"
	"github.com/lawqa/go-lawqa-backend/internal/search"
	"github.com/lawqa/go-lawqa-backend/internal/sysutil"
)

// version is stamped into traces and logs; overridden at build time via
// -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	out := sysutil.LogWriter(cfg.LogFile)
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	gin.SetMode(cfg.GinMode)

	// Tracing
	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	// Persistence (bookmarks, preferences, idempotency)
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("could not open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// Record collection
	store := catalog.NewStore(
		&catalog.Loader{Source: cfg.DataSource},
		search.Engine(cfg.SearchEngine),
		search.WithMinScore(cfg.SearchMinScore),
	)
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := store.Reload(loadCtx); err != nil {
		// Not fatal: the API serves a load_failed status until the source
		// recovers and a change event triggers the next reload.
		log.Error().Err(err).Str("source", cfg.DataSource).Msg("initial data load failed")
	} else {
		snap := store.Snapshot()
		log.Info().Int("records", len(snap.Records)).Str("status", string(snap.Status)).Msg("data loaded")
	}
	cancel()

	// Hot reload for local file sources. URL sources load once at startup.
	if !strings.HasPrefix(cfg.DataSource, "http://") && !strings.HasPrefix(cfg.DataSource, "https://") {
		w, err := reload.NewWatcher(cfg.DataSource, cfg.ReloadDebounce, func() {
			rctx, rcancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer rcancel()
			if err := store.Reload(rctx); err != nil {
				log.Error().Err(err).Msg("data reload failed")
				return
			}
			log.Info().Int("records", len(store.Snapshot().Records)).Msg("data reloaded")
		})
		if err != nil {
			log.Error().Err(err).Msg("could not create data watcher")
		} else if err := w.Start(); err != nil {
			log.Error().Err(err).Msg("could not watch data source")
		} else {
			defer func() { _ = w.Stop() }()
		}
	}

	// HTTP
	r := gin.New()
	httpapi.RegisterRoutes(r, db, store, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("base", cfg.APIBasePath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	log.Info().Msg("bye")
}
