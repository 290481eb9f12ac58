package forest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"preditor_imoveis/internal/domain/entities"
	"preditor_imoveis/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyForest           = errors.New("forest has no trees")
	ErrFeatureSchemaMismatch = errors.New("artifact feature names do not match the encoder")
	ErrFeatureShapeMismatch  = errors.New("feature vector does not match the model")
	ErrUnsupportedFormat     = errors.New("unsupported artifact format")
)

// leafChild marks a missing child, as in scikit-learn's tree_ arrays.
const leafChild = -1

// Node is one entry of a tree's flat node array.
//
// Internal nodes send x to Left when x[Feature] <= Threshold and to Right
// otherwise. Leaves have Left == Right == -1 and carry the prediction in Value.
type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Value     float64 `json:"value" yaml:"value"`
}

func (n Node) isLeaf() bool {
	return n.Left == leafChild && n.Right == leafChild
}

type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Artifact is the serialized regression forest.
type Artifact struct {
	Name               string             `json:"name" yaml:"name"`
	Version            string             `json:"version" yaml:"version"`
	SchemaVersion      string             `json:"schema_version" yaml:"schema_version"`
	FeatureNames       []string           `json:"feature_names" yaml:"feature_names"`
	FeatureImportances map[string]float64 `json:"feature_importances,omitempty" yaml:"feature_importances,omitempty"`
	Trees              []Tree             `json:"trees" yaml:"trees"`
}

// RandomForest evaluates an averaged ensemble of regression trees. It is
// immutable after construction and safe for concurrent use.
type RandomForest struct {
	info  entities.ModelInfo
	trees []Tree
}

var _ interfaces.IPriceModel = (*RandomForest)(nil)

// Load reads an artifact from disk. ".json" files are decoded as JSON,
// ".yaml" and ".yml" files as YAML.
func Load(path string) (*RandomForest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a Artifact
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode json artifact: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode yaml artifact: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return New(a)
}

// New checks the artifact structure and the feature layout before building the
// forest. A forest fit on a different column order is refused here rather than
// producing silently wrong prices later.
func New(a Artifact) (*RandomForest, error) {
	if len(a.Trees) == 0 {
		return nil, ErrEmptyForest
	}
	if !slices.Equal(a.FeatureNames, entities.FeatureNames()) {
		return nil, fmt.Errorf("%w: artifact=%v encoder=%v", ErrFeatureSchemaMismatch, a.FeatureNames, entities.FeatureNames())
	}
	if a.SchemaVersion != "" && a.SchemaVersion != entities.FeatureSchemaVersion {
		return nil, fmt.Errorf("%w: artifact schema %q, encoder schema %q", ErrFeatureSchemaMismatch, a.SchemaVersion, entities.FeatureSchemaVersion)
	}
	for i, t := range a.Trees {
		if err := checkTree(t, len(a.FeatureNames)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	schema := a.SchemaVersion
	if schema == "" {
		schema = entities.FeatureSchemaVersion
	}
	trees := make([]Tree, len(a.Trees))
	for i, t := range a.Trees {
		trees[i] = Tree{Nodes: slices.Clone(t.Nodes)}
	}
	importances := make(map[string]float64, len(a.FeatureImportances))
	for k, v := range a.FeatureImportances {
		importances[k] = v
	}

	return &RandomForest{
		info: entities.ModelInfo{
			Name:               a.Name,
			Version:            a.Version,
			SchemaVersion:      schema,
			Trees:              len(a.Trees),
			FeatureNames:       slices.Clone(a.FeatureNames),
			FeatureImportances: importances,
		},
		trees: trees,
	}, nil
}

// checkTree verifies children point forward in the node array, which rules out
// cycles and out-of-range jumps.
func checkTree(t Tree, features int) error {
	if len(t.Nodes) == 0 {
		return errors.New("tree has no nodes")
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			continue
		}
		if n.Left == leafChild || n.Right == leafChild {
			return fmt.Errorf("node %d has a single child", i)
		}
		if n.Feature < 0 || n.Feature >= features {
			return fmt.Errorf("node %d splits on feature %d, have %d features", i, n.Feature, features)
		}
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid children %d/%d", i, n.Left, n.Right)
		}
	}
	return nil
}

func (f *RandomForest) Info() entities.ModelInfo {
	info := f.info
	info.FeatureNames = slices.Clone(f.info.FeatureNames)
	info.FeatureImportances = make(map[string]float64, len(f.info.FeatureImportances))
	for k, v := range f.info.FeatureImportances {
		info.FeatureImportances[k] = v
	}
	return info
}

// Predict returns the mean of the leaf values reached in every tree.
func (f *RandomForest) Predict(v entities.EncodedFeatureVector) (float64, error) {
	if v.Len() != len(f.info.FeatureNames) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d", ErrFeatureShapeMismatch, v.Len(), len(f.info.FeatureNames))
	}
	if !slices.Equal(v.Names(), f.info.FeatureNames) {
		return 0, fmt.Errorf("%w: got %v, model expects %v", ErrFeatureShapeMismatch, v.Names(), f.info.FeatureNames)
	}

	x := v.Values()
	var sum float64
	for _, t := range f.trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.trees)), nil
}

func (t Tree) predict(x []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
