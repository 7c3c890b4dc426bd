package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/CommunityDirectory/internal/assist"
	"github.com/JonMunkholm/CommunityDirectory/internal/catalog"
	"github.com/JonMunkholm/CommunityDirectory/internal/config"
	"github.com/JonMunkholm/CommunityDirectory/internal/core"
	"github.com/JonMunkholm/CommunityDirectory/internal/logging"
	"github.com/JonMunkholm/CommunityDirectory/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"data_path", cfg.Data.Path,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"assistant_enabled", cfg.Assist.Enabled(),
	)

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := loadStore(cfg.Data)
	if err != nil {
		return err
	}
	slog.Info("directory loaded", "resources", store.Len(), "cities", len(store.Cities()))

	service := core.NewService(store, nil)

	opts := web.Options{}
	assistant, err := assist.New(ctx, cfg.Assist.APIKey, assist.Options{
		Model:             cfg.Assist.Model,
		Timeout:           cfg.Assist.Timeout,
		CacheTTL:          cfg.Assist.CacheTTL,
		RequestsPerMinute: cfg.Assist.RequestsPerMinute,
		Temperature:       cfg.Assist.Temperature,
		MaxConcurrent:     cfg.Assist.MaxConcurrent,
	})
	switch {
	case errors.Is(err, core.ErrAssistUnavailable):
		slog.Warn("assistant disabled, set GEMINI_API_KEY to enable drafting and live checks")
	case err != nil:
		return fmt.Errorf("create assistant: %w", err)
	default:
		opts.Drafter = assistant
		opts.Searcher = assistant
		slog.Info("assistant enabled", "model", assistant.Model())
	}

	server := web.NewServer(service, cfg, opts)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if assistant != nil && assistant.InFlight() > 0 {
			slog.Info("waiting for assistant calls to complete", "active", assistant.InFlight())
			if err := assistant.Drain(shutdownCtx); err != nil {
				slog.Warn("assistant calls did not complete in time", "error", err)
			}
		}
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadStore builds the directory from DATA_PATH, or the embedded catalog.
func loadStore(cfg config.DataConfig) (*core.Store, error) {
	opts := core.BuildOptions{Rand: core.NewRand(cfg.Seed), Now: time.Now}

	if cfg.Path == "" {
		return core.Build(catalog.Raw(), opts), nil
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	return core.BuildFromReader(f, opts)
}
