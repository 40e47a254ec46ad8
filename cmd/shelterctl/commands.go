package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"pet-shelter/internal/adapters/storage"
	"pet-shelter/internal/adapters/storage/docrepo"
	"pet-shelter/internal/config"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/predictions"
	"pet-shelter/internal/platform/httpclient"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/ports/docstore"

	"github.com/spf13/cobra"
)

func newAPIClient() (*httpclient.Client, error) {
	return httpclient.New(apiURL, timeout)
}

// --- train ---

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Entrena los modelos de predicción (POST /predictions/train)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return runTrain(cmd.Context(), c, cmd.OutOrStdout())
	},
}

func runTrain(ctx context.Context, c *httpclient.Client, w io.Writer) error {
	var res predictions.TrainResult
	if err := c.Post(ctx, "/predictions/train", nil, &res); err != nil {
		return err
	}
	fmt.Fprintln(w, renderModelResult("adoption_likelihood", res.AdoptionLikelihood))
	fmt.Fprintln(w, renderModelResult("time_to_adoption", res.TimeToAdoption))
	return nil
}

// --- predictions ---

var predictionsCmd = &cobra.Command{
	Use:   "predictions",
	Short: "Lista las predicciones de animales disponibles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return runPredictions(cmd.Context(), c, cmd.OutOrStdout())
	},
}

func runPredictions(ctx context.Context, c *httpclient.Client, w io.Writer) error {
	var items []predictions.Prediction
	if err := c.Get(ctx, "/predictions", &items); err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "no available animals")
		return nil
	}
	fmt.Fprintln(w, predictionsTable(items))
	return nil
}

// --- seed ---

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga datos de ejemplo a través de la API",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		sum, err := runSeed(cmd.Context(), c)
		if err != nil {
			return err
		}
		printSuccess("seeded %s", sum)
		return nil
	},
}

// --- ping ---

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Hace ping periódico al document store para mantenerlo despierto",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = cfg.KeepAlive.Interval
		}
		once, _ := cmd.Flags().GetBool("once")

		ctx := cmd.Context()
		store, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		return runPing(ctx, store, interval, once, cliLogger(cfg))
	},
}

func init() {
	pingCmd.Flags().Duration("interval", 0, "intervalo entre pings (por defecto keepalive.interval)")
	pingCmd.Flags().Bool("once", false, "un solo ping y salir")
}

// runPing corre hasta que ctx se cancele. Un ping fallido se loguea y no corta el loop;
// con once el error se devuelve.
func runPing(ctx context.Context, store docstore.Store, interval time.Duration, once bool, log logger.Logger) error {
	ping := func() error {
		pctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		start := time.Now()
		err := store.Ping(pctx)
		fields := map[string]any{"duration_ms": time.Since(start).Milliseconds()}
		if err != nil {
			fields["error"] = err
			log.Error("store ping failed", fields)
			return err
		}
		log.Info("store ping ok", fields)
		return nil
	}

	if once {
		return ping()
	}

	log.Info("keep-alive started", map[string]any{"interval": interval.String()})
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		_ = ping()
		select {
		case <-ctx.Done():
			log.Info("keep-alive stopped", nil)
			return nil
		case <-t.C:
		}
	}
}

// --- reconcile ---

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Quita de los animales referencias a voluntarios que ya no existen",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		n, err := runReconcile(ctx, store, cliLogger(cfg))
		if err != nil {
			return err
		}
		printSuccess("%d animals updated", n)
		return nil
	},
}

func runReconcile(ctx context.Context, store docstore.Store, log logger.Logger) (int, error) {
	repos := docrepo.New(store)
	svc := animals.NewService(repos.Animals, repos.Volunteers, log)
	return svc.Reconcile(ctx)
}

func cliLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "shelterctl",
	})
}
