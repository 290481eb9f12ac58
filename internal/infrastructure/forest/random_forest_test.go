package forest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"preditor_imoveis/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// testArtifact has two stumps: one splits on area, the other on the
// furnishingstatus_vazio dummy (column 12).
func testArtifact() Artifact {
	return Artifact{
		Name:          "house-price-rf",
		Version:       "test",
		SchemaVersion: entities.FeatureSchemaVersion,
		FeatureNames:  entities.FeatureNames(),
		FeatureImportances: map[string]float64{
			entities.FeatureArea:            0.7,
			entities.FeatureFurnishingVazio: 0.3,
		},
		Trees: []Tree{
			{Nodes: []Node{
				{Feature: 0, Threshold: 5000, Left: 1, Right: 2},
				{Feature: -2, Left: -1, Right: -1, Value: 3000000},
				{Feature: -2, Left: -1, Right: -1, Value: 6000000},
			}},
			{Nodes: []Node{
				{Feature: 12, Threshold: 0.5, Left: 1, Right: 2},
				{Feature: -2, Left: -1, Right: -1, Value: 5000000},
				{Feature: -2, Left: -1, Right: -1, Value: 2000000},
			}},
		},
	}
}

func house(area int, status entities.FurnishingStatus) entities.EncodedFeatureVector {
	return entities.EncodeFeatures(entities.HouseDescription{
		Area: area, Bedrooms: 3, Bathrooms: 1, Stories: 1, FurnishingStatus: status,
	})
}

func TestRandomForest_Predict(t *testing.T) {
	f, err := New(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		in    entities.EncodedFeatureVector
		price float64
	}{
		{"large mobiliado", house(7420, entities.FurnishingMobiliado), 5500000},
		{"threshold goes left", house(5000, entities.FurnishingMobiliado), 4000000},
		{"small vazio", house(1650, entities.FurnishingVazio), 2500000},
		{"large vazio", house(9000, entities.FurnishingVazio), 4000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Predict(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.price {
				t.Fatalf("expected %v, got %v", tc.price, got)
			}
		})
	}
}

func TestRandomForest_PredictIsDeterministic(t *testing.T) {
	f, err := New(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := house(6100, entities.FurnishingSemiMobiliado)
	a, _ := f.Predict(in)
	b, _ := f.Predict(in)
	if a != b {
		t.Fatalf("expected identical predictions, got %v and %v", a, b)
	}
}

func TestRandomForest_PredictShapeMismatch(t *testing.T) {
	f, err := New(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.Predict(entities.EncodedFeatureVector{}); !errors.Is(err, ErrFeatureShapeMismatch) {
		t.Fatalf("expected ErrFeatureShapeMismatch, got %v", err)
	}
}

func TestNew_RejectsInvalidArtifacts(t *testing.T) {
	t.Run("no trees", func(t *testing.T) {
		a := testArtifact()
		a.Trees = nil
		if _, err := New(a); !errors.Is(err, ErrEmptyForest) {
			t.Fatalf("expected ErrEmptyForest, got %v", err)
		}
	})

	t.Run("feature order differs", func(t *testing.T) {
		a := testArtifact()
		a.FeatureNames[0], a.FeatureNames[1] = a.FeatureNames[1], a.FeatureNames[0]
		if _, err := New(a); !errors.Is(err, ErrFeatureSchemaMismatch) {
			t.Fatalf("expected ErrFeatureSchemaMismatch, got %v", err)
		}
	})

	t.Run("missing dummy column", func(t *testing.T) {
		a := testArtifact()
		a.FeatureNames = a.FeatureNames[:12]
		if _, err := New(a); !errors.Is(err, ErrFeatureSchemaMismatch) {
			t.Fatalf("expected ErrFeatureSchemaMismatch, got %v", err)
		}
	})

	t.Run("schema version differs", func(t *testing.T) {
		a := testArtifact()
		a.SchemaVersion = "house-features/v0"
		if _, err := New(a); !errors.Is(err, ErrFeatureSchemaMismatch) {
			t.Fatalf("expected ErrFeatureSchemaMismatch, got %v", err)
		}
	})

	t.Run("child points backwards", func(t *testing.T) {
		a := testArtifact()
		a.Trees[0].Nodes[0].Left = 0
		if _, err := New(a); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("split feature out of range", func(t *testing.T) {
		a := testArtifact()
		a.Trees[1].Nodes[0].Feature = 13
		if _, err := New(a); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty tree", func(t *testing.T) {
		a := testArtifact()
		a.Trees = append(a.Trees, Tree{})
		if _, err := New(a); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRandomForest_Info(t *testing.T) {
	f, err := New(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info := f.Info()
	if info.Name != "house-price-rf" || info.Version != "test" || info.Trees != 2 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(info.FeatureNames) != entities.FeatureCount || info.FeatureImportances[entities.FeatureArea] != 0.7 {
		t.Fatalf("unexpected info: %+v", info)
	}

	info.FeatureNames[0] = "changed"
	if f.Info().FeatureNames[0] != entities.FeatureArea {
		t.Fatalf("Info must return a copy")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	jsonData, err := json.Marshal(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yamlData, err := yaml.Marshal(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files := map[string][]byte{
		"model.json": jsonData,
		"model.yaml": yamlData,
		"model.yml":  yamlData,
	}
	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0o600); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			f, err := Load(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := f.Predict(house(7420, entities.FurnishingMobiliado))
			if err != nil || got != 5500000 {
				t.Fatalf("expected 5500000, got %v (%v)", got, err)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "model.pkl")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("unknown json field", func(t *testing.T) {
		path := filepath.Join(dir, "extra.json")
		if err := os.WriteFile(path, []byte(`{"trees":[],"n_estimators":100}`), 0o600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoad_BundledArtifact(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "..", "models", "house_price_forest.json"))
	if err != nil {
		t.Fatalf("bundled artifact must load: %v", err)
	}
	price, err := f.Predict(house(7420, entities.FurnishingMobiliado))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price <= 0 {
		t.Fatalf("expected a positive price, got %v", price)
	}
}
