package request

import (
	"encoding/json"
	"errors"

	"preditor_imoveis/internal/domain/entities"
)

// HouseFeaturesRequest is the body of POST /v1/predict.
//
// Fields are pointers so a missing field can be told apart from a zero value;
// range and enumeration checks happen in entities.ValidateHouse.
type HouseFeaturesRequest struct {
	Area             *int    `json:"area" example:"7420"`
	Bedrooms         *int    `json:"bedrooms" example:"4"`
	Bathrooms        *int    `json:"bathrooms" example:"2"`
	Stories          *int    `json:"stories" example:"3"`
	MainRoad         *int    `json:"mainroad" example:"1"`
	GuestRoom        *int    `json:"guestroom" example:"0"`
	Basement         *int    `json:"basement" example:"0"`
	HotWaterHeating  *int    `json:"hotwaterheating" example:"0"`
	AirConditioning  *int    `json:"airconditioning" example:"1"`
	Parking          *int    `json:"parking" example:"2"`
	PrefArea         *int    `json:"prefarea" example:"1"`
	FurnishingStatus *string `json:"furnishingstatus" example:"mobiliado"`

	typeViolations []entities.FieldViolation
}

// UnmarshalJSON decodes each known field on its own, so a wrongly typed field
// is recorded and decoding carries on with the next one.
func (r *HouseFeaturesRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = HouseFeaturesRequest{}
	ints := map[string]**int{
		"area":            &r.Area,
		"bedrooms":        &r.Bedrooms,
		"bathrooms":       &r.Bathrooms,
		"stories":         &r.Stories,
		"mainroad":        &r.MainRoad,
		"guestroom":       &r.GuestRoom,
		"basement":        &r.Basement,
		"hotwaterheating": &r.HotWaterHeating,
		"airconditioning": &r.AirConditioning,
		"parking":         &r.Parking,
		"prefarea":        &r.PrefArea,
	}

	for _, rule := range entities.HouseSchema {
		msg, ok := raw[rule.Name]
		if !ok {
			continue
		}
		var err error
		if dst, isInt := ints[rule.Name]; isInt {
			*dst, err = decodeField[int](msg)
		} else {
			r.FurnishingStatus, err = decodeField[string](msg)
		}
		if err != nil {
			r.typeViolations = append(r.typeViolations, entities.NewViolation(rule, entities.RuleType))
		}
	}
	return nil
}

// decodeField leaves the field unset when the value has the wrong JSON type.
func decodeField[T any](msg json.RawMessage) (*T, error) {
	var v *T
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r HouseFeaturesRequest) ToHouseInput() entities.HouseInput {
	return entities.HouseInput{
		Area:             r.Area,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		Stories:          r.Stories,
		MainRoad:         r.MainRoad,
		GuestRoom:        r.GuestRoom,
		Basement:         r.Basement,
		HotWaterHeating:  r.HotWaterHeating,
		AirConditioning:  r.AirConditioning,
		Parking:          r.Parking,
		PrefArea:         r.PrefArea,
		FurnishingStatus: r.FurnishingStatus,
	}
}

// FieldErrors reports nil when every field had the expected JSON type.
// Otherwise it returns the type violations together with the schema
// violations of the remaining fields, in schema order.
func (r HouseFeaturesRequest) FieldErrors() *entities.ValidationError {
	if len(r.typeViolations) == 0 {
		return nil
	}

	byField := make(map[string]entities.FieldViolation, len(entities.HouseSchema))
	for _, v := range r.typeViolations {
		byField[v.Field] = v
	}
	_, err := entities.ValidateHouse(r.ToHouseInput())
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			if _, seen := byField[v.Field]; !seen {
				byField[v.Field] = v
			}
		}
	}

	out := &entities.ValidationError{}
	for _, rule := range entities.HouseSchema {
		if v, ok := byField[rule.Name]; ok {
			out.Violations = append(out.Violations, v)
		}
	}
	return out
}
