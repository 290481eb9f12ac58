package entities

import "time"

// PredictionResult is the outcome of one price prediction.
//
// PredictedPrice is the raw model output and is not range-checked.
// ID is set only when the prediction was stored in the history table.
type PredictionResult struct {
	ID              string
	PredictedPrice  float64
	FormattedPrice  string
	Features        EncodedFeatureVector
	Confidence      Confidence
	ConfidenceScore int
	ModelVersion    string
}

// PredictionRecord is a stored prediction.
//
// Storage model (DynamoDB):
//   - PK: id
type PredictionRecord struct {
	ID              string
	House           HouseDescription
	Features        EncodedFeatureVector
	PredictedPrice  float64
	FormattedPrice  string
	Confidence      Confidence
	ConfidenceScore int
	ModelVersion    string
	CreatedAt       time.Time
}

// ModelInfo describes the loaded model artifact.
type ModelInfo struct {
	Name               string
	Version            string
	SchemaVersion      string
	Trees              int
	FeatureNames       []string
	FeatureImportances map[string]float64
}
