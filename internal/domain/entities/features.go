package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FeatureSchemaVersion identifies the column layout below. Model artifacts
// declare the version they were fit with.
const FeatureSchemaVersion = "house-features/v1"

// Encoded column names. "mobiliado" is the reference category of the furnishing
// one-hot expansion, so it has no column.
const (
	FeatureArea                    = "area"
	FeatureBedrooms                = "bedrooms"
	FeatureBathrooms               = "bathrooms"
	FeatureStories                 = "stories"
	FeatureMainRoad                = "mainroad"
	FeatureGuestRoom               = "guestroom"
	FeatureBasement                = "basement"
	FeatureHotWaterHeating         = "hotwaterheating"
	FeatureAirConditioning         = "airconditioning"
	FeatureParking                 = "parking"
	FeaturePrefArea                = "prefarea"
	FeatureFurnishingSemiMobiliado = "furnishingstatus_semi-mobiliado"
	FeatureFurnishingVazio         = "furnishingstatus_vazio"
)

var featureOrder = [...]string{
	FeatureArea,
	FeatureBedrooms,
	FeatureBathrooms,
	FeatureStories,
	FeatureMainRoad,
	FeatureGuestRoom,
	FeatureBasement,
	FeatureHotWaterHeating,
	FeatureAirConditioning,
	FeatureParking,
	FeaturePrefArea,
	FeatureFurnishingSemiMobiliado,
	FeatureFurnishingVazio,
}

// FeatureCount is the length of every encoded vector.
const FeatureCount = len(featureOrder)

// FeatureNames returns a copy of the column order the price model was fit on.
func FeatureNames() []string {
	out := make([]string, FeatureCount)
	copy(out, featureOrder[:])
	return out
}

// Feature is one named column of an encoded vector.
type Feature struct {
	Name  string
	Value float64
}

// EncodedFeatureVector is the ordered numeric input of the price model.
type EncodedFeatureVector struct {
	features []Feature
}

// EncodeFeatures expands a validated house into the model's column order.
func EncodeFeatures(h HouseDescription) EncodedFeatureVector {
	values := [FeatureCount]int{
		h.Area,
		h.Bedrooms,
		h.Bathrooms,
		h.Stories,
		h.MainRoad,
		h.GuestRoom,
		h.Basement,
		h.HotWaterHeating,
		h.AirConditioning,
		h.Parking,
		h.PrefArea,
		indicator(h.FurnishingStatus == FurnishingSemiMobiliado),
		indicator(h.FurnishingStatus == FurnishingVazio),
	}

	features := make([]Feature, FeatureCount)
	for i, name := range featureOrder {
		features[i] = Feature{Name: name, Value: float64(values[i])}
	}
	return EncodedFeatureVector{features: features}
}

func indicator(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FeatureVectorFromMap rebuilds a vector from a name -> value mapping. Every
// column must be present and no extra column is accepted.
func FeatureVectorFromMap(m map[string]float64) (EncodedFeatureVector, error) {
	if len(m) != FeatureCount {
		return EncodedFeatureVector{}, fmt.Errorf("expected %d features, got %d", FeatureCount, len(m))
	}
	features := make([]Feature, FeatureCount)
	for i, name := range featureOrder {
		v, ok := m[name]
		if !ok {
			return EncodedFeatureVector{}, fmt.Errorf("missing feature %q", name)
		}
		features[i] = Feature{Name: name, Value: v}
	}
	return EncodedFeatureVector{features: features}, nil
}

func (v EncodedFeatureVector) Len() int { return len(v.features) }

func (v EncodedFeatureVector) Features() []Feature {
	return append([]Feature(nil), v.features...)
}

func (v EncodedFeatureVector) Names() []string {
	out := make([]string, len(v.features))
	for i, f := range v.features {
		out[i] = f.Name
	}
	return out
}

func (v EncodedFeatureVector) Values() []float64 {
	out := make([]float64, len(v.features))
	for i, f := range v.features {
		out[i] = f.Value
	}
	return out
}

func (v EncodedFeatureVector) Map() map[string]float64 {
	out := make(map[string]float64, len(v.features))
	for _, f := range v.features {
		out[f.Name] = f.Value
	}
	return out
}

// Get returns the value of a named column.
func (v EncodedFeatureVector) Get(name string) (float64, bool) {
	for _, f := range v.features {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// MarshalJSON writes the columns as an object in encoder order.
func (v EncodedFeatureVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range v.features {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(f.Value, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v *EncodedFeatureVector) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	decoded, err := FeatureVectorFromMap(m)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
