package entities

import (
	"errors"
	"reflect"
	"testing"
)

func ip(v int) *int       { return &v }
func sp(v string) *string { return &v }

func validInput() HouseInput {
	return HouseInput{
		Area:             ip(7420),
		Bedrooms:         ip(4),
		Bathrooms:        ip(2),
		Stories:          ip(3),
		MainRoad:         ip(1),
		GuestRoom:        ip(0),
		Basement:         ip(0),
		HotWaterHeating:  ip(0),
		AirConditioning:  ip(1),
		Parking:          ip(2),
		PrefArea:         ip(1),
		FurnishingStatus: sp("mobiliado"),
	}
}

func TestValidateHouse_Valid(t *testing.T) {
	h, err := ValidateHouse(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := HouseDescription{
		Area: 7420, Bedrooms: 4, Bathrooms: 2, Stories: 3, MainRoad: 1,
		AirConditioning: 1, Parking: 2, PrefArea: 1, FurnishingStatus: FurnishingMobiliado,
	}
	if h != want {
		t.Fatalf("expected %+v, got %+v", want, h)
	}
}

func TestValidateHouse_InclusiveBounds(t *testing.T) {
	for _, rule := range HouseSchema {
		if len(rule.Allowed) > 0 {
			continue
		}
		for _, v := range []int{rule.Min, rule.Max} {
			in := validInput()
			setIntField(&in, rule.Name, v)
			if _, err := ValidateHouse(in); err != nil {
				t.Fatalf("%s=%d should be accepted, got %v", rule.Name, v, err)
			}
		}
		for _, v := range []int{rule.Min - 1, rule.Max + 1} {
			in := validInput()
			setIntField(&in, rule.Name, v)
			_, err := ValidateHouse(in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("%s=%d should be rejected, got %v", rule.Name, v, err)
			}
			if len(verr.Violations) != 1 || verr.Violations[0].Field != rule.Name || verr.Violations[0].Rule != RuleRange {
				t.Fatalf("unexpected violations for %s=%d: %+v", rule.Name, v, verr.Violations)
			}
		}
	}
}

func TestValidateHouse_AreaBelowMinimum(t *testing.T) {
	in := validInput()
	in.Area = ip(1649)

	_, err := ValidateHouse(in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !verr.HasField("area") {
		t.Fatalf("expected area violation, got %+v", verr.Violations)
	}
	v := verr.Violations[0]
	if v.Min == nil || *v.Min != 1650 || v.Max == nil || *v.Max != 16200 {
		t.Fatalf("expected area bounds in violation, got %+v", v)
	}
	if v.Message != "area must be between 1650 and 16200" {
		t.Fatalf("unexpected message: %q", v.Message)
	}
}

func TestValidateHouse_FurnishingStatus(t *testing.T) {
	for _, value := range []string{"Furnished", "Mobiliado", " mobiliado", "mobiliado ", "semi mobiliado", ""} {
		t.Run(value, func(t *testing.T) {
			in := validInput()
			in.FurnishingStatus = sp(value)

			_, err := ValidateHouse(in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Violations) != 1 || verr.Violations[0].Field != "furnishingstatus" {
				t.Fatalf("unexpected violations: %+v", verr.Violations)
			}
			want := []string{"mobiliado", "semi-mobiliado", "vazio"}
			if !reflect.DeepEqual(verr.Violations[0].Allowed, want) {
				t.Fatalf("expected allowed values %v, got %v", want, verr.Violations[0].Allowed)
			}
		})
	}

	for _, status := range FurnishingStatuses {
		in := validInput()
		in.FurnishingStatus = sp(string(status))
		h, err := ValidateHouse(in)
		if err != nil {
			t.Fatalf("%s should be accepted: %v", status, err)
		}
		if h.FurnishingStatus != status {
			t.Fatalf("expected %s, got %s", status, h.FurnishingStatus)
		}
	}
}

func TestValidateHouse_MissingFields(t *testing.T) {
	in := validInput()
	in.Bedrooms = nil
	in.FurnishingStatus = nil

	_, err := ValidateHouse(in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", verr.Violations)
	}
	for _, v := range verr.Violations {
		if v.Rule != RuleRequired {
			t.Fatalf("expected required rule, got %+v", v)
		}
	}
	if !verr.HasField("bedrooms") || !verr.HasField("furnishingstatus") {
		t.Fatalf("unexpected fields: %+v", verr.Violations)
	}
}

func TestValidateHouse_ReportsEveryViolation(t *testing.T) {
	in := validInput()
	in.Area = ip(20000)
	in.Parking = ip(4)
	in.FurnishingStatus = sp("Furnished")

	_, err := ValidateHouse(in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		got = append(got, v.Field)
	}
	if !reflect.DeepEqual(got, []string{"area", "parking", "furnishingstatus"}) {
		t.Fatalf("unexpected violation order: %v", got)
	}
}

func TestRuleFor(t *testing.T) {
	r, ok := RuleFor("parking")
	if !ok || r.Min != 0 || r.Max != 3 {
		t.Fatalf("unexpected parking rule: %+v", r)
	}
	if _, ok := RuleFor("price"); ok {
		t.Fatalf("expected no rule for price")
	}
}

func TestHouseDescription_InputRoundTrip(t *testing.T) {
	h, err := ValidateHouse(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := ValidateHouse(h.Input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != h {
		t.Fatalf("expected %+v, got %+v", h, again)
	}
}

func setIntField(in *HouseInput, name string, v int) {
	switch name {
	case "area":
		in.Area = ip(v)
	case "bedrooms":
		in.Bedrooms = ip(v)
	case "bathrooms":
		in.Bathrooms = ip(v)
	case "stories":
		in.Stories = ip(v)
	case "mainroad":
		in.MainRoad = ip(v)
	case "guestroom":
		in.GuestRoom = ip(v)
	case "basement":
		in.Basement = ip(v)
	case "hotwaterheating":
		in.HotWaterHeating = ip(v)
	case "airconditioning":
		in.AirConditioning = ip(v)
	case "parking":
		in.Parking = ip(v)
	case "prefarea":
		in.PrefArea = ip(v)
	}
}
