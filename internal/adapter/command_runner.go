package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner runs external tools such as the colour converter and the video
// encoder.
type CommandRunner interface {
	// Run executes name with args. env entries are appended to the current
	// environment. Output is discarded; stderr is attached to the error.
	Run(ctx context.Context, env []string, name string, args ...string) error
}

// LocalCommandRunner runs commands with os/exec.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run executes the command and waits for it.
func (r *LocalCommandRunner) Run(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	var stderr bytes.Buffer

	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}

		return fmt.Errorf("%s: %w: %s", name, err, msg)
	}

	return nil
}
