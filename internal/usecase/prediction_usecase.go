package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"preditor_imoveis/internal/domain/entities"
	"preditor_imoveis/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrModelUnavailable    = errors.New("model not loaded")
	ErrInference           = errors.New("prediction failed")
	ErrHistoryDisabled     = errors.New("prediction history disabled")
	ErrPredictionNotFound  = errors.New("prediction not found")
	ErrInvalidPredictionID = errors.New("invalid prediction id")
)

//go:generate mockgen -source=prediction_usecase.go -destination=../adapter/http/handlers/mocks/mock_prediction_usecase.go -package=mocks

// IPredictionUseCase exposes the house price prediction operations.
//
//   - Predict validates, encodes and scores one house
//   - ModelLoaded / ModelInfo report the startup state of the artifact
//   - GetPrediction reads a stored prediction back
type IPredictionUseCase interface {
	Predict(ctx context.Context, in entities.HouseInput) (entities.PredictionResult, error)
	ModelLoaded() bool
	ModelInfo() (entities.ModelInfo, error)
	GetPrediction(ctx context.Context, id string) (entities.PredictionRecord, error)
}

// PredictionUseCase is built once at startup. A nil model means the artifact
// failed to load and every prediction is refused until restart. A nil repo
// disables the prediction history.
type PredictionUseCase struct {
	model interfaces.IPriceModel
	repo  interfaces.IPredictionRepository
	now   func() time.Time
}

var _ IPredictionUseCase = (*PredictionUseCase)(nil)

func NewPredictionUseCase(model interfaces.IPriceModel, repo interfaces.IPredictionRepository) *PredictionUseCase {
	return &PredictionUseCase{
		model: model,
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *PredictionUseCase) ModelLoaded() bool {
	return u.model != nil
}

func (u *PredictionUseCase) ModelInfo() (entities.ModelInfo, error) {
	if u.model == nil {
		return entities.ModelInfo{}, ErrModelUnavailable
	}
	return u.model.Info(), nil
}

// Predict checks model availability before looking at the input, so an
// unloaded model is reported regardless of input validity.
func (u *PredictionUseCase) Predict(ctx context.Context, in entities.HouseInput) (entities.PredictionResult, error) {
	if u.model == nil {
		return entities.PredictionResult{}, ErrModelUnavailable
	}

	house, err := entities.ValidateHouse(in)
	if err != nil {
		return entities.PredictionResult{}, err
	}

	features := entities.EncodeFeatures(house)
	price, err := u.model.Predict(features)
	if err != nil {
		log.Printf("[prediction][usecase] model call failed %s err=%v", house, err)
		return entities.PredictionResult{}, fmt.Errorf("%w: %v", ErrInference, err)
	}

	score, confidence := entities.AssessConfidence(house)
	result := AssembleResult(price, features, score, confidence)
	result.ModelVersion = u.model.Info().Version

	if u.repo != nil {
		result.ID = u.record(ctx, house, result)
	}
	return result, nil
}

// AssembleResult composes the response fields; it performs no other computation.
func AssembleResult(price float64, features entities.EncodedFeatureVector, score int, confidence entities.Confidence) entities.PredictionResult {
	return entities.PredictionResult{
		PredictedPrice:  price,
		FormattedPrice:  FormatPrice(price),
		Features:        features,
		Confidence:      confidence,
		ConfidenceScore: score,
	}
}

// record stores the prediction and returns its id, or "" when storing failed.
// History is best effort: the caller still gets the prediction.
func (u *PredictionUseCase) record(ctx context.Context, house entities.HouseDescription, result entities.PredictionResult) string {
	rec := entities.PredictionRecord{
		ID:              uuid.NewString(),
		House:           house,
		Features:        result.Features,
		PredictedPrice:  result.PredictedPrice,
		FormattedPrice:  result.FormattedPrice,
		Confidence:      result.Confidence,
		ConfidenceScore: result.ConfidenceScore,
		ModelVersion:    result.ModelVersion,
		CreatedAt:       u.now(),
	}
	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[prediction][usecase] history write failed id=%s err=%v", rec.ID, err)
		return ""
	}
	return created.ID
}

func (u *PredictionUseCase) GetPrediction(ctx context.Context, id string) (entities.PredictionRecord, error) {
	if u.repo == nil {
		return entities.PredictionRecord{}, ErrHistoryDisabled
	}
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.PredictionRecord{}, ErrInvalidPredictionID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PredictionRecord{}, err
	}
	if rec.ID == "" {
		return entities.PredictionRecord{}, ErrPredictionNotFound
	}
	return rec, nil
}
