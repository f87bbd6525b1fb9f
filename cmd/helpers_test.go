package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/controller"
)

const testScene = `nodes:
  - path: "|src:cube"
    type: transform
    shape: mesh
    points: [[-1, -1, -1], [1, -1, -1], [-1, 1, -1], [1, 1, 1]]
  - path: "|src:sphere"
    type: transform
    shape: mesh
    points: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
  - path: "|dst:cube"
    type: transform
    shape: mesh
    points: [[-1, -1, -1], [1, -1, -1], [-1, 1, -1], [1, 1, 1]]
  - path: "|dst:sphere"
    type: transform
    shape: mesh
    points: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
  - path: "|dst:torus"
    type: transform
    shape: mesh
    points: [[0, 0, 0], [2, 0, 0], [0, 2, 0]]
sources: ["|src:cube", "|src:sphere"]
destinations: ["|dst:cube", "|dst:sphere", "|dst:torus"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

func writeScene(t *testing.T) string {
	t.Helper()

	return writeFile(t, "shot.yaml", testScene)
}

// useUI makes setup hand out the UI built by build for the rest of the test.
func useUI(t *testing.T, build func(cmd *cobra.Command) controller.UI) {
	t.Helper()

	original := newUI
	newUI = build

	t.Cleanup(func() { newUI = original })
}

func useSimpleUI(t *testing.T) {
	t.Helper()

	useUI(t, func(cmd *cobra.Command) controller.UI { return controller.NewSimpleUI(cmd) })
}

// execute runs sub under a fresh root command with a config file that does
// not exist, so defaults apply unless args say otherwise.
func execute(t *testing.T, sub *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := newRootCmd()
	root.AddCommand(sub)
	root.SetOut(&out)
	root.SetErr(&errOut)

	base := []string{
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
	}
	root.SetArgs(append(append([]string{sub.Name()}, base...), args...))

	err := root.Execute()

	return out.String(), errOut.String(), err
}
