package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	artifactstore "pet-shelter/internal/adapters/artifacts"
	"pet-shelter/internal/adapters/storage"
	"pet-shelter/internal/config"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/metrics"
	"pet-shelter/internal/router"
)

// @title Pet Shelter API
// @version 1.0
// @description Gestión de refugio: animales, adopciones, historial médico, voluntarios, gráficos y predicciones.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "archivo YAML de configuración (o SHELTER_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Warn("closing storage", map[string]any{"error": err})
		}
	}()

	arts, err := artifactstore.Open(ctx, cfg.Artifacts)
	if err != nil {
		return fmt.Errorf("opening artifact store: %w", err)
	}

	handler := router.NewRouter(router.Options{
		Store:          store,
		Artifacts:      arts,
		ArtifactPrefix: cfg.Artifacts.Prefix,
		Predictions:    router.PredictionOptions(cfg.Predictions),
		Logger:         log,
		Metrics:        metrics.New(),
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":              addr,
			"storage_driver":    cfg.Storage.Driver,
			"artifacts_driver":  arts.Driver(),
			"heuristic_enabled": cfg.Predictions.HeuristicEnabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
