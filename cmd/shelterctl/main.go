package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	configPath string
	timeout    time.Duration
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "shelterctl",
	Short: "Herramientas de operación del refugio",
	Long: `shelterctl habla con la API del refugio (train, predictions, seed) o
directamente con el document store (ping, reconcile).

Examples:
  shelterctl seed --api http://localhost:8080
  shelterctl train
  shelterctl predictions
  shelterctl ping --interval 30m
  shelterctl reconcile --config ./shelter.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultAPI := os.Getenv("SHELTER_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&apiURL, "api", defaultAPI, "URL base de la API (o SHELTER_API_URL)")
	pf.StringVar(&configPath, "config", "", "archivo YAML de configuración (o SHELTER_CONFIG)")
	pf.DurationVar(&timeout, "timeout", 60*time.Second, "timeout por request")
	pf.BoolVar(&noColor, "no-color", false, "salida sin colores")

	rootCmd.AddCommand(trainCmd, predictionsCmd, seedCmd, pingCmd, reconcileCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
