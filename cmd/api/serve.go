package main

import (
	"context"
	"os"
	"os/signal"
	"preditor_imoveis/internal/adapter/http/routes"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the prediction HTTP API.

Examples:
  preditor serve
  preditor serve --port 8080 --model models/house_price_forest.yaml`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := routes.ConfigFromEnv()
	if flagPort > 0 {
		cfg.Port = flagPort
	}
	if flagModel != "" {
		cfg.ModelPath = flagModel
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return routes.Run(ctx, cfg)
}
