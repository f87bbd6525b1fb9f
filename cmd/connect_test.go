package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

func readScene(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scene: %v", err)
	}

	return string(data)
}

func TestConnectCmd_ConnectsPairs(t *testing.T) {
	useSimpleUI(t)

	scene := writeScene(t)

	out, errOut, err := execute(t, newConnectCmd(), "--scene", scene)
	if err != nil {
		t.Fatalf("Execute() error = %v\nstderr:\n%s", err, errOut)
	}

	if !strings.Contains(out, "APPLIED 2") {
		t.Fatalf("output missing applied count\noutput:\n%s", out)
	}

	written := readScene(t, scene)
	if got := strings.Count(written, "kind:"); got != 4 {
		t.Fatalf("scene has %d connections, want 4 (two blendshapes, two visibility)\nscene:\n%s", got, written)
	}

	// A second run finds everything already connected.
	out, _, err = execute(t, newConnectCmd(), "--scene", scene)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}

	if !strings.Contains(out, "SKIPPED 2") {
		t.Fatalf("second run should skip both pairs\noutput:\n%s", out)
	}
}

func TestConnectCmd_ParentMode(t *testing.T) {
	useSimpleUI(t)

	scene := writeScene(t)

	if _, _, err := execute(t, newConnectCmd(),
		"--scene", scene,
		"--connection-mode", "parent",
		"--inherit-visibility=false",
	); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	written := readScene(t, scene)
	if !strings.Contains(written, "|src:cube|dst:cube") {
		t.Fatalf("dst:cube should be parented under src:cube\nscene:\n%s", written)
	}

	if strings.Contains(written, "kind:") {
		t.Fatalf("parent mode without visibility should add no connections\nscene:\n%s", written)
	}
}

func TestConnectCmd_PlanAndDryRun(t *testing.T) {
	useSimpleUI(t)

	scene := writeScene(t)
	plan := t.TempDir() + "/plan.json"
	before := readScene(t, scene)

	out, _, err := execute(t, newConnectCmd(), "--scene", scene, "--plan", plan, "--dry-run")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "2 pairs written to "+plan) {
		t.Fatalf("plan line missing\noutput:\n%s", out)
	}

	data, err := os.ReadFile(plan)
	if err != nil {
		t.Fatalf("plan not written: %v", err)
	}

	if !strings.Contains(string(data), `"|src:cube"`) {
		t.Fatalf("plan missing pair\nplan:\n%s", data)
	}

	if after := readScene(t, scene); after != before {
		t.Fatalf("dry run rewrote the scene\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestConnectCmd_MultiPairsBlocked(t *testing.T) {
	useSimpleUI(t)

	scene := writeScene(t)

	_, errOut, err := execute(t, newConnectCmd(), "--scene", scene, "--override", "src:cube=dst:torus")
	if !errors.Is(err, m.ErrMultiPairs) {
		t.Fatalf("Execute() error = %v, want ErrMultiPairs", err)
	}

	if !strings.Contains(errOut, "connect error") {
		t.Fatalf("stderr missing connect error\nstderr:\n%s", errOut)
	}

	if strings.Contains(readScene(t, scene), "kind:") {
		t.Fatalf("blocked connect must not touch the scene")
	}
}

func TestConnectCmd_Report(t *testing.T) {
	useSimpleUI(t)

	scene := writeScene(t)
	report := t.TempDir() + "/report.yaml"

	if _, _, err := execute(t, newConnectCmd(), "--scene", scene, "--report", report); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := reportStore.LoadReport(m.Path(report))
	if err != nil {
		t.Fatalf("LoadReport() error = %v", err)
	}

	if len(got.Entries) != 2 || got.Count(m.StatusApplied) != 2 {
		t.Fatalf("report entries = %+v, want two applied pairs", got.Entries)
	}

	if got.Scene != m.Path(scene) {
		t.Fatalf("report scene = %q, want %q", got.Scene, scene)
	}
}
