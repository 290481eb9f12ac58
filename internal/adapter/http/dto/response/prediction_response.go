package response

import (
	"preditor_imoveis/internal/domain/entities"
	"time"
)

type PredictionResponse struct {
	PredictedPrice float64                       `json:"predicted_price" example:"5512345.5"`
	FormattedPrice string                        `json:"formatted_price" example:"R$ 5,512,345.50"`
	FeaturesUsed   entities.EncodedFeatureVector `json:"features_used" swaggertype:"object,number"`
	Confidence     string                        `json:"confidence" example:"Alta"`
	PredictionID   string                        `json:"prediction_id,omitempty"`
}

func FromPredictionResult(r entities.PredictionResult) PredictionResponse {
	return PredictionResponse{
		PredictedPrice: r.PredictedPrice,
		FormattedPrice: r.FormattedPrice,
		FeaturesUsed:   r.Features,
		Confidence:     string(r.Confidence),
		PredictionID:   r.ID,
	}
}

type PredictionRecordResponse struct {
	PredictionID    string                        `json:"prediction_id"`
	House           entities.HouseDescription     `json:"house"`
	PredictedPrice  float64                       `json:"predicted_price"`
	FormattedPrice  string                        `json:"formatted_price"`
	FeaturesUsed    entities.EncodedFeatureVector `json:"features_used" swaggertype:"object,number"`
	Confidence      string                        `json:"confidence"`
	ConfidenceScore int                           `json:"confidence_score"`
	ModelVersion    string                        `json:"model_version,omitempty"`
	CreatedAt       time.Time                     `json:"created_at"`
}

func FromPredictionRecord(r entities.PredictionRecord) PredictionRecordResponse {
	return PredictionRecordResponse{
		PredictionID:    r.ID,
		House:           r.House,
		PredictedPrice:  r.PredictedPrice,
		FormattedPrice:  r.FormattedPrice,
		FeaturesUsed:    r.Features,
		Confidence:      string(r.Confidence),
		ConfidenceScore: r.ConfidenceScore,
		ModelVersion:    r.ModelVersion,
		CreatedAt:       r.CreatedAt,
	}
}

type ModelInfoResponse struct {
	Name               string             `json:"name"`
	Version            string             `json:"version"`
	SchemaVersion      string             `json:"schema_version,omitempty"`
	Trees              int                `json:"trees"`
	FeatureNames       []string           `json:"feature_names"`
	FeatureImportances map[string]float64 `json:"feature_importances,omitempty"`
}

func FromModelInfo(m entities.ModelInfo) ModelInfoResponse {
	return ModelInfoResponse{
		Name:               m.Name,
		Version:            m.Version,
		SchemaVersion:      m.SchemaVersion,
		Trees:              m.Trees,
		FeatureNames:       m.FeatureNames,
		FeatureImportances: m.FeatureImportances,
	}
}
