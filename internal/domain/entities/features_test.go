package entities

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleHouse(status FurnishingStatus) HouseDescription {
	return HouseDescription{
		Area: 7420, Bedrooms: 4, Bathrooms: 2, Stories: 3, MainRoad: 1,
		AirConditioning: 1, Parking: 2, PrefArea: 1, FurnishingStatus: status,
	}
}

func TestEncodeFeatures_Order(t *testing.T) {
	v := EncodeFeatures(sampleHouse(FurnishingMobiliado))

	want := []string{
		"area", "bedrooms", "bathrooms", "stories", "mainroad", "guestroom", "basement",
		"hotwaterheating", "airconditioning", "parking", "prefarea",
		"furnishingstatus_semi-mobiliado", "furnishingstatus_vazio",
	}
	if v.Len() != 13 || FeatureCount != 13 {
		t.Fatalf("expected 13 features, got %d", v.Len())
	}
	if !reflect.DeepEqual(v.Names(), want) {
		t.Fatalf("unexpected order: %v", v.Names())
	}
	if !reflect.DeepEqual(FeatureNames(), want) {
		t.Fatalf("unexpected FeatureNames: %v", FeatureNames())
	}
	wantValues := []float64{7420, 4, 2, 3, 1, 0, 0, 0, 1, 2, 1, 0, 0}
	if !reflect.DeepEqual(v.Values(), wantValues) {
		t.Fatalf("unexpected values: %v", v.Values())
	}
}

func TestEncodeFeatures_FurnishingDummies(t *testing.T) {
	cases := []struct {
		status      FurnishingStatus
		semi, vazio float64
	}{
		{FurnishingMobiliado, 0, 0},
		{FurnishingSemiMobiliado, 1, 0},
		{FurnishingVazio, 0, 1},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			v := EncodeFeatures(sampleHouse(tc.status))
			semi, _ := v.Get(FeatureFurnishingSemiMobiliado)
			vazio, _ := v.Get(FeatureFurnishingVazio)
			if semi != tc.semi || vazio != tc.vazio {
				t.Fatalf("expected (%v,%v), got (%v,%v)", tc.semi, tc.vazio, semi, vazio)
			}
			if semi == 1 && vazio == 1 {
				t.Fatalf("both dummies set")
			}
		})
	}
}

func TestEncodeFeatures_Idempotent(t *testing.T) {
	h := sampleHouse(FurnishingVazio)
	a := EncodeFeatures(h)
	b := EncodeFeatures(h)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("encoding is not deterministic: %v vs %v", a.Values(), b.Values())
	}
}

func TestEncodedFeatureVector_MarshalJSONKeepsOrder(t *testing.T) {
	v := EncodeFeatures(sampleHouse(FurnishingSemiMobiliado))
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"area":7420,"bedrooms":4,"bathrooms":2,"stories":3,"mainroad":1,"guestroom":0,"basement":0,` +
		`"hotwaterheating":0,"airconditioning":1,"parking":2,"prefarea":1,` +
		`"furnishingstatus_semi-mobiliado":1,"furnishingstatus_vazio":0}`
	if string(raw) != want {
		t.Fatalf("unexpected json:\n%s\nwant:\n%s", raw, want)
	}

	var decoded EncodedFeatureVector
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(decoded.Values(), v.Values()) {
		t.Fatalf("unexpected decoded values: %v", decoded.Values())
	}
}

func TestFeatureVectorFromMap(t *testing.T) {
	m := EncodeFeatures(sampleHouse(FurnishingMobiliado)).Map()
	if _, err := FeatureVectorFromMap(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	delete(m, FeatureParking)
	if _, err := FeatureVectorFromMap(m); err == nil {
		t.Fatalf("expected error for missing column")
	}

	m[FeatureParking] = 1
	m["furnishingstatus_mobiliado"] = 1
	if _, err := FeatureVectorFromMap(m); err == nil {
		t.Fatalf("expected error for extra column")
	}
}
