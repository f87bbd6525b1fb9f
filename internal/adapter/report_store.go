package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// ReportStore persists and retrieves connect reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.ConnectReport) error
	LoadReport(path m.Path) (m.ConnectReport, error)
}

type reportFile struct {
	Scene     string            `yaml:"scene,omitempty" json:"scene,omitempty"`
	CreatedAt time.Time         `yaml:"created_at" json:"created_at"`
	Summary   map[string]int    `yaml:"summary" json:"summary"`
	Entries   []reportEntryFile `yaml:"entries" json:"entries"`
}

type reportEntryFile struct {
	Source      string `yaml:"source" json:"source"`
	Destination string `yaml:"destination" json:"destination"`
	Mode        string `yaml:"mode" json:"mode"`
	Status      string `yaml:"status" json:"status"`
	Message     string `yaml:"message,omitempty" json:"message,omitempty"`
}

var reportStatuses = []m.ConnectStatus{m.StatusApplied, m.StatusSkipped, m.StatusConflict, m.StatusError}

type reportStore struct{}

// NewReportStore constructs a ReportStore writing YAML, or JSON for paths
// ending in .json.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(path m.Path, report m.ConnectReport) error {
	doc := reportFile{
		Scene:     string(report.Scene),
		CreatedAt: report.CreatedAt,
		Summary:   make(map[string]int, len(reportStatuses)),
		Entries:   make([]reportEntryFile, 0, len(report.Entries)),
	}

	for _, status := range reportStatuses {
		doc.Summary[string(status)] = report.Count(status)
	}

	for _, e := range report.Entries {
		doc.Entries = append(doc.Entries, reportEntryFile{
			Source:      e.Source,
			Destination: e.Destination,
			Mode:        e.Mode.String(),
			Status:      string(e.Status),
			Message:     e.Message,
		})
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
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReport(path m.Path) (m.ConnectReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.ConnectReport{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var doc reportFile
	if isJSON(path) {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return m.ConnectReport{}, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	report := m.ConnectReport{
		Scene:     m.Path(doc.Scene),
		CreatedAt: doc.CreatedAt,
		Entries:   make([]m.ReportEntry, 0, len(doc.Entries)),
	}

	for _, e := range doc.Entries {
		mode, err := m.ParseConnectionMode(e.Mode)
		if err != nil {
			return m.ConnectReport{}, fmt.Errorf("report %s: %w", path, err)
		}

		report.Entries = append(report.Entries, m.ReportEntry{
			Source:      e.Source,
			Destination: e.Destination,
			Mode:        mode,
			Status:      m.ConnectStatus(e.Status),
			Message:     e.Message,
		})
	}

	return report, nil
}
