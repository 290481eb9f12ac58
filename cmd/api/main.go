package main

import (
	"fmt"
	"os"

	_ "preditor_imoveis/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           House Price Prediction API
// @version         1.0
// @description     Predicts house prices with a pre-trained Random Forest model.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000

// @BasePath  /

var (
	flagPort  int
	flagModel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "preditor",
		Short: "House price prediction service",
		// Without a subcommand the binary serves HTTP.
		RunE: runServe,
	}
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "model artifact path (overrides MODEL_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
