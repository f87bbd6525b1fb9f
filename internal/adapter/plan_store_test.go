package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

func samplePlan() m.Plan {
	cfg := m.DefaultPairingConfig()
	cfg.DetectionMode = m.DetectVertex
	cfg.ConnectionMode = m.ConnectWrap

	return m.Plan{
		ID:        "5f0c8a4e-2f7b-4d8e-9a51-3c9f0b7e1d22",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Scene:     "shot.yaml",
		Config:    cfg,
		Pairs: []m.PlanPair{
			{Source: "|src|cube", Destination: "|dst|cube"},
			{Source: "|src|sphere", Destination: "|dst|sphere"},
		},
	}
}

func TestPlanStore_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"plan.yaml", "plan.json"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := m.Path(filepath.Join(t.TempDir(), "plans", name))
			store := NewPlanStore()
			plan := samplePlan()

			if err := store.SavePlan(path, plan); err != nil {
				t.Fatalf("SavePlan returned error: %v", err)
			}

			got, err := store.LoadPlan(path)
			if err != nil {
				t.Fatalf("LoadPlan returned error: %v", err)
			}

			if got.ID != plan.ID || !got.CreatedAt.Equal(plan.CreatedAt) || got.Scene != plan.Scene {
				t.Fatalf("plan header mismatch: got %+v", got)
			}

			if got.Config != plan.Config {
				t.Fatalf("config mismatch: got %+v, want %+v", got.Config, plan.Config)
			}

			if len(got.Pairs) != 2 || got.Pairs[1] != plan.Pairs[1] {
				t.Fatalf("pairs mismatch: got %+v", got.Pairs)
			}
		})
	}
}

func TestPlanStore_JSONFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.JSON")
	if err := NewPlanStore().SavePlan(m.Path(path), samplePlan()); err != nil {
		t.Fatalf("SavePlan returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read plan: %v", err)
	}

	if !strings.HasPrefix(string(data), "{") || !strings.Contains(string(data), `"detection_mode": "vertex"`) {
		t.Fatalf("expected indented JSON, got:\n%s", data)
	}
}

func TestPlanStore_LoadPlan_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewPlanStore()

	if _, err := store.LoadPlan(m.Path(filepath.Join(dir, "missing.yaml"))); err == nil {
		t.Fatalf("expected error for missing plan")
	}

	bad := filepath.Join(dir, "bad.yaml")
	content := "id: x\nsettings:\n  detection_mode: psychic\n  connection_mode: wrap\n"

	if err := os.WriteFile(bad, []byte(content), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}

	if _, err := store.LoadPlan(m.Path(bad)); err == nil || !strings.Contains(err.Error(), "psychic") {
		t.Fatalf("expected unknown mode error, got %v", err)
	}
}
