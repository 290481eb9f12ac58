package interfaces

import "preditor_imoveis/internal/domain/entities"

//go:generate mockgen -source=price_model_interface.go -destination=mocks/mock_price_model_interface.go -package=mock_interfaces

// IPriceModel abstracts the trained price model.
//
// Implementations are loaded once at startup and shared read-only by every
// request. Predict must fail when the vector layout does not match the layout the
// model was fit on.
type IPriceModel interface {
	Predict(features entities.EncodedFeatureVector) (float64, error)
	Info() entities.ModelInfo
}
