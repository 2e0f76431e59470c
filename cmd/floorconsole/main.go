package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/floorconsole/internal/app"
	"github.com/odyssey-erp/floorconsole/internal/devicestatus"
	"github.com/odyssey-erp/floorconsole/internal/observability"
	"github.com/odyssey-erp/floorconsole/internal/routes"
	"github.com/odyssey-erp/floorconsole/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	handler, err := buildHandler(cfg, logger)
	if err != nil {
		logger.Error("build router", slog.Any("error", err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      handler,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("env", cfg.AppEnv),
			slog.String("upstream", cfg.UpstreamURL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func buildHandler(cfg *app.Config, logger *slog.Logger) (http.Handler, error) {
	metrics := observability.NewMetrics()

	statusHandler := devicestatus.NewHandler(devicestatus.Config{
		UpstreamURL: cfg.UpstreamURL,
		Timeout:     cfg.UpstreamTimeout,
		Logger:      logger,
		Observer:    metrics,
	})
	forwarder, err := devicestatus.NewForwarder(cfg.UpstreamURL, logger)
	if err != nil {
		return nil, err
	}

	assets, err := consoleAssets(cfg)
	if err != nil {
		return nil, err
	}

	return app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		StatusHandler: statusHandler,
		Forwarder:     forwarder,
		Routes:        routes.Console,
		Assets:        assets,
		Metrics:       metrics,
	}), nil
}

// consoleAssets prefers an on-disk build in STATIC_DIR over the embedded one.
func consoleAssets(cfg *app.Config) (fs.FS, error) {
	if cfg.StaticDir == "" {
		return web.Assets(), nil
	}
	info, err := os.Stat(cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir: %s is not a directory", cfg.StaticDir)
	}
	return os.DirFS(cfg.StaticDir), nil
}
