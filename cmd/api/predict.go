package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"preditor_imoveis/internal/adapter/http/dto/request"
	"preditor_imoveis/internal/adapter/http/dto/response"
	"preditor_imoveis/internal/adapter/http/routes"
	"preditor_imoveis/internal/usecase"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict [house.json]",
	Short: "Predict the price of one house described in a JSON file",
	Long: `Score one house offline, without starting the server or writing history.

Use "-" to read the description from stdin.

Examples:
  preditor predict house.json
  echo '{"area":7420,...}' | preditor predict -`,
	Args: cobra.ExactArgs(1),
	RunE: runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args[0])
	if err != nil {
		return err
	}

	var payload request.HouseFeaturesRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("invalid house description: %w", err)
	}
	if verr := payload.FieldErrors(); verr != nil {
		return verr
	}

	modelPath := routes.ConfigFromEnv().ModelPath
	if flagModel != "" {
		modelPath = flagModel
	}
	uc := usecase.NewPredictionUseCase(routes.LoadModel(modelPath), nil)

	result, err := uc.Predict(cmd.Context(), payload.ToHouseInput())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(response.FromPredictionResult(result))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
