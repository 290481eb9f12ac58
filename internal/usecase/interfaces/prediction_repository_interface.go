package interfaces

import (
	"context"
	"preditor_imoveis/internal/domain/entities"
)

//go:generate mockgen -source=prediction_repository_interface.go -destination=mocks/mock_prediction_repository_interface.go -package=mock_interfaces

// IPredictionRepository abstracts DynamoDB persistence for PredictionRecord.
//
// GetByID returns a zero-value record (empty ID) when nothing is stored under id.

type IPredictionRepository interface {
	Create(ctx context.Context, r entities.PredictionRecord) (entities.PredictionRecord, error)
	GetByID(ctx context.Context, id string) (entities.PredictionRecord, error)
}
