package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"dashboard.solarcredits.org/internal/app"
	"dashboard.solarcredits.org/internal/appconf"
	"dashboard.solarcredits.org/internal/generation"
	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/pvwatts"
	"dashboard.solarcredits.org/internal/restapi"
	"dashboard.solarcredits.org/internal/storeclient"
	"dashboard.solarcredits.org/internal/webui"
	"dashboard.solarcredits.org/storedb"
)

const shutdownTimeout = 10 * time.Second

// newApplication opens the store database, imports the seed file if one is
// configured, and wires the generation loader to its remote services.
func newApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	db, err := storedb.NewClient(storedb.NewConfig(cfg.DBPath, cfg.Env, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}

	if cfg.SeedFile != "" {
		if err := db.ImportFromFile(ctx, cfg.SeedFile); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to import seed file: %w", err)
		}
	}

	stores := storeclient.NewClient(storeclient.Config{
		BaseURL: cfg.StoreAPIURL,
		APIKey:  cfg.StoreAPIKey,
		Timeout: cfg.HTTPClientTimeout,
		Logger:  logger,
	})
	estimator := pvwatts.NewClient(pvwatts.Config{
		BaseURL:     cfg.PVWattsURL,
		APIKey:      cfg.PVWattsAPIKey,
		RatePerHour: cfg.PVWattsRatePerHour,
		Timeout:     cfg.HTTPClientTimeout,
		Logger:      logger,
	})

	return &app.Application{
		Config:  cfg,
		Logger:  logger,
		StoreDB: db,
		Loader:  generation.NewLoader(stores, estimator, logger),
	}, nil
}

// routes mounts the JSON API under /api/ and the pages everywhere else, then
// applies compression and request logging to both.
func routes(api *restapi.RestAPI, webUI *webui.WebUI, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", api.Handler())
	mux.Handle("/", webUI.Handler())

	return restapi.NewRequestLoggingMiddleware(logger)(restapi.CompressionMiddleware(mux))
}

func newServer(cfg appconf.Config, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HTTPClientTimeout*2 + 10*time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", "addr", srv.Addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	application, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.StoreDB.Close(); err != nil {
			logging.LogError(logger, "failed to close store database", err)
		}
	}()

	if cfg.SeedFile != "" {
		logging.LogOperation(logger, "seed_imported",
			slog.String("file", cfg.SeedFile),
			slog.Duration("runtime", application.StoreDB.ImportRuntime()))
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	webUI, err := webui.NewWebUI(application)
	if err != nil {
		return err
	}

	srv := newServer(cfg, routes(api, webUI, logger), logger)

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	return serve(ctx, srv, logger)
}
