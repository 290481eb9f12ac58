package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FurnishingStatus is the categorical furnishing attribute of a house.
//
// Values are matched case-sensitively; there is no normalization.
type FurnishingStatus string

const (
	FurnishingMobiliado     FurnishingStatus = "mobiliado"
	FurnishingSemiMobiliado FurnishingStatus = "semi-mobiliado"
	FurnishingVazio         FurnishingStatus = "vazio"
)

// FurnishingStatuses lists the accepted values in declaration order.
var FurnishingStatuses = []FurnishingStatus{FurnishingMobiliado, FurnishingSemiMobiliado, FurnishingVazio}

// HouseInput is an unvalidated house description. A nil field means the caller
// did not send it.
type HouseInput struct {
	Area             *int
	Bedrooms         *int
	Bathrooms        *int
	Stories          *int
	MainRoad         *int
	GuestRoom        *int
	Basement         *int
	HotWaterHeating  *int
	AirConditioning  *int
	Parking          *int
	PrefArea         *int
	FurnishingStatus *string
}

// HouseDescription is a house that satisfies every rule of HouseSchema.
// Only ValidateHouse builds one from user input.
type HouseDescription struct {
	Area             int              `json:"area"`
	Bedrooms         int              `json:"bedrooms"`
	Bathrooms        int              `json:"bathrooms"`
	Stories          int              `json:"stories"`
	MainRoad         int              `json:"mainroad"`
	GuestRoom        int              `json:"guestroom"`
	Basement         int              `json:"basement"`
	HotWaterHeating  int              `json:"hotwaterheating"`
	AirConditioning  int              `json:"airconditioning"`
	Parking          int              `json:"parking"`
	PrefArea         int              `json:"prefarea"`
	FurnishingStatus FurnishingStatus `json:"furnishingstatus"`
}

// FieldRule is one entry of the house schema: an integer field with a closed
// range, or an enumerated string field when Allowed is set.
type FieldRule struct {
	Name     string
	field    string
	Min, Max int
	Allowed  []string
}

func (r FieldRule) validateTag() string {
	if len(r.Allowed) > 0 {
		return "required,oneof=" + strings.Join(r.Allowed, " ")
	}
	return fmt.Sprintf("required,min=%d,max=%d", r.Min, r.Max)
}

func (r FieldRule) domain() string {
	if len(r.Allowed) > 0 {
		return strings.Join(r.Allowed, ", ")
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// HouseSchema is the declarative set of input rules, in request field order.
var HouseSchema = []FieldRule{
	{Name: "area", field: "Area", Min: 1650, Max: 16200},
	{Name: "bedrooms", field: "Bedrooms", Min: 1, Max: 6},
	{Name: "bathrooms", field: "Bathrooms", Min: 1, Max: 4},
	{Name: "stories", field: "Stories", Min: 1, Max: 4},
	{Name: "mainroad", field: "MainRoad", Min: 0, Max: 1},
	{Name: "guestroom", field: "GuestRoom", Min: 0, Max: 1},
	{Name: "basement", field: "Basement", Min: 0, Max: 1},
	{Name: "hotwaterheating", field: "HotWaterHeating", Min: 0, Max: 1},
	{Name: "airconditioning", field: "AirConditioning", Min: 0, Max: 1},
	{Name: "parking", field: "Parking", Min: 0, Max: 3},
	{Name: "prefarea", field: "PrefArea", Min: 0, Max: 1},
	{Name: "furnishingstatus", field: "FurnishingStatus", Allowed: furnishingValues()},
}

func furnishingValues() []string {
	out := make([]string, 0, len(FurnishingStatuses))
	for _, s := range FurnishingStatuses {
		out = append(out, string(s))
	}
	return out
}

// RuleFor returns the schema rule for a request field name.
func RuleFor(name string) (FieldRule, bool) {
	for _, r := range HouseSchema {
		if r.Name == name {
			return r, true
		}
	}
	return FieldRule{}, false
}

var houseValidator = newHouseValidator()

func newHouseValidator() *validator.Validate {
	v := validator.New()
	rules := make(map[string]string, len(HouseSchema))
	for _, r := range HouseSchema {
		rules[r.field] = r.validateTag()
	}
	v.RegisterStructValidationMapRules(rules, HouseInput{})
	return v
}

// Validation rule identifiers reported in FieldViolation.Rule.
const (
	RuleRequired = "required"
	RuleRange    = "range"
	RuleEnum     = "enum"
	RuleType     = "type"
)

// FieldViolation describes why one field was rejected.
type FieldViolation struct {
	Field   string
	Rule    string
	Message string
	Min     *int
	Max     *int
	Allowed []string
}

// ValidationError carries every violation found in one request.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Message)
	}
	return "invalid house description: " + strings.Join(parts, "; ")
}

// HasField reports whether the named field was rejected.
func (e *ValidationError) HasField(name string) bool {
	for _, v := range e.Violations {
		if v.Field == name {
			return true
		}
	}
	return false
}

// NewViolation builds the violation reported for a schema field.
func NewViolation(rule FieldRule, kind string) FieldViolation {
	v := FieldViolation{Field: rule.Name, Rule: kind}
	if len(rule.Allowed) > 0 {
		v.Allowed = append([]string(nil), rule.Allowed...)
	} else {
		lo, hi := rule.Min, rule.Max
		v.Min, v.Max = &lo, &hi
	}

	switch kind {
	case RuleRequired:
		v.Message = fmt.Sprintf("%s is required (allowed: %s)", rule.Name, rule.domain())
	case RuleType:
		if len(rule.Allowed) > 0 {
			v.Message = fmt.Sprintf("%s must be a string, one of: %s", rule.Name, rule.domain())
		} else {
			v.Message = fmt.Sprintf("%s must be an integer between %d and %d", rule.Name, rule.Min, rule.Max)
		}
	case RuleEnum:
		v.Message = fmt.Sprintf("%s must be one of: %s", rule.Name, rule.domain())
	default:
		v.Message = fmt.Sprintf("%s must be between %d and %d", rule.Name, rule.Min, rule.Max)
	}
	return v
}

// ValidateHouse checks every field against HouseSchema and returns the proven
// HouseDescription, or a *ValidationError listing all offending fields.
func ValidateHouse(in HouseInput) (HouseDescription, error) {
	if err := houseValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return HouseDescription{}, err
		}
		out := &ValidationError{}
		for _, fe := range verrs {
			rule, ok := ruleForStructField(fe.StructField())
			if !ok {
				return HouseDescription{}, fmt.Errorf("unexpected validation failure on %s: %w", fe.StructField(), err)
			}
			out.Violations = append(out.Violations, NewViolation(rule, violationKind(rule, fe.Tag())))
		}
		return HouseDescription{}, out
	}

	return HouseDescription{
		Area:             *in.Area,
		Bedrooms:         *in.Bedrooms,
		Bathrooms:        *in.Bathrooms,
		Stories:          *in.Stories,
		MainRoad:         *in.MainRoad,
		GuestRoom:        *in.GuestRoom,
		Basement:         *in.Basement,
		HotWaterHeating:  *in.HotWaterHeating,
		AirConditioning:  *in.AirConditioning,
		Parking:          *in.Parking,
		PrefArea:         *in.PrefArea,
		FurnishingStatus: FurnishingStatus(*in.FurnishingStatus),
	}, nil
}

func ruleForStructField(field string) (FieldRule, bool) {
	for _, r := range HouseSchema {
		if r.field == field {
			return r, true
		}
	}
	return FieldRule{}, false
}

func violationKind(rule FieldRule, tag string) string {
	switch {
	case tag == "required":
		return RuleRequired
	case len(rule.Allowed) > 0:
		return RuleEnum
	default:
		return RuleRange
	}
}

// Input converts a validated description back into its raw form.
func (h HouseDescription) Input() HouseInput {
	status := string(h.FurnishingStatus)
	return HouseInput{
		Area:             intPtr(h.Area),
		Bedrooms:         intPtr(h.Bedrooms),
		Bathrooms:        intPtr(h.Bathrooms),
		Stories:          intPtr(h.Stories),
		MainRoad:         intPtr(h.MainRoad),
		GuestRoom:        intPtr(h.GuestRoom),
		Basement:         intPtr(h.Basement),
		HotWaterHeating:  intPtr(h.HotWaterHeating),
		AirConditioning:  intPtr(h.AirConditioning),
		Parking:          intPtr(h.Parking),
		PrefArea:         intPtr(h.PrefArea),
		FurnishingStatus: &status,
	}
}

func intPtr(v int) *int { return &v }

// String renders the description as key=value pairs for logs.
func (h HouseDescription) String() string {
	return "area=" + strconv.Itoa(h.Area) +
		" bedrooms=" + strconv.Itoa(h.Bedrooms) +
		" bathrooms=" + strconv.Itoa(h.Bathrooms) +
		" furnishingstatus=" + string(h.FurnishingStatus)
}
