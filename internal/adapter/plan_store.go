package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// PlanStore persists and retrieves exported connection plans.
type PlanStore interface {
	SavePlan(path m.Path, plan m.Plan) error
	LoadPlan(path m.Path) (m.Plan, error)
}

type planFile struct {
	ID        string         `yaml:"id" json:"id"`
	CreatedAt time.Time      `yaml:"created_at" json:"created_at"`
	Scene     string         `yaml:"scene,omitempty" json:"scene,omitempty"`
	Settings  planSettings   `yaml:"settings" json:"settings"`
	Pairs     []planPairFile `yaml:"pairs" json:"pairs"`
}

type planSettings struct {
	DetectionMode           string  `yaml:"detection_mode" json:"detection_mode"`
	BBoxDistanceThreshold   float64 `yaml:"bbox_distance_threshold" json:"bbox_distance_threshold"`
	VertexDistanceThreshold float64 `yaml:"vertex_distance_threshold" json:"vertex_distance_threshold"`
	ConnectionMode          string  `yaml:"connection_mode" json:"connection_mode"`
	InheritVisibility       bool    `yaml:"inherit_visibility" json:"inherit_visibility"`
	InheritTransform        bool    `yaml:"inherit_transform" json:"inherit_transform"`
	AllowMultiPairs         bool    `yaml:"allow_multi_pairs" json:"allow_multi_pairs"`
}

type planPairFile struct {
	Source      string `yaml:"source" json:"source"`
	Destination string `yaml:"destination" json:"destination"`
}

type planStore struct{}

// NewPlanStore constructs a PlanStore writing YAML, or JSON for paths ending
// in .json.
func NewPlanStore() PlanStore {
	return &planStore{}
}

func isJSON(path m.Path) bool {
	return strings.EqualFold(filepath.Ext(string(path)), ".json")
}

func (ps *planStore) SavePlan(path m.Path, plan m.Plan) error {
	doc := planFile{
		ID:        plan.ID,
		CreatedAt: plan.CreatedAt,
		Scene:     string(plan.Scene),
		Settings: planSettings{
			DetectionMode:           plan.Config.DetectionMode.String(),
			BBoxDistanceThreshold:   plan.Config.BBoxDistanceThreshold,
			VertexDistanceThreshold: plan.Config.VertexDistanceThreshold,
			ConnectionMode:          plan.Config.ConnectionMode.String(),
			InheritVisibility:       plan.Config.InheritVisibility,
			InheritTransform:        plan.Config.InheritTransform,
			AllowMultiPairs:         plan.Config.AllowMultiPairs,
		},
		Pairs: make([]planPairFile, 0, len(plan.Pairs)),
	}

	for _, pair := range plan.Pairs {
		doc.Pairs = append(doc.Pairs, planPairFile(pair))
	}

	var (
		data []byte
		err  error
	)

	if isJSON(path) {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create plan directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan %s: %w", path, err)
	}

	return nil
}

func (ps *planStore) LoadPlan(path m.Path) (m.Plan, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Plan{}, fmt.Errorf("failed to read plan %s: %w", path, err)
	}

	var doc planFile
	if isJSON(path) {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return m.Plan{}, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}

	detection, err := m.ParseDetectionMode(doc.Settings.DetectionMode)
	if err != nil {
		return m.Plan{}, err
	}

	connection, err := m.ParseConnectionMode(doc.Settings.ConnectionMode)
	if err != nil {
		return m.Plan{}, err
	}

	plan := m.Plan{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		Scene:     m.Path(doc.Scene),
		Config: m.PairingConfig{
			DetectionMode:           detection,
			BBoxDistanceThreshold:   doc.Settings.BBoxDistanceThreshold,
			VertexDistanceThreshold: doc.Settings.VertexDistanceThreshold,
			ConnectionMode:          connection,
			InheritVisibility:       doc.Settings.InheritVisibility,
			InheritTransform:        doc.Settings.InheritTransform,
			AllowMultiPairs:         doc.Settings.AllowMultiPairs,
		},
		Pairs: make([]m.PlanPair, 0, len(doc.Pairs)),
	}

	for _, pair := range doc.Pairs {
		plan.Pairs = append(plan.Pairs, m.PlanPair(pair))
	}

	return plan, nil
}
