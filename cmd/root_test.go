package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/nwave-fx/fxpipe/internal/config"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

func TestRootCmd_ConfigFileApplied(t *testing.T) {
	useSimpleUI(t)

	config := writeFile(t, "fxpipe.toml", "[pairing]\ndetection_mode = \"vertex\"\nvertex_distance_threshold = 0.5\n")

	out, _, err := execute(t, newPairsCmd(), "--scene", writeScene(t), "--config", config)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "detection vertex  threshold 0.5") {
		t.Fatalf("config not applied\noutput:\n%s", out)
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	useSimpleUI(t)

	config := writeFile(t, "fxpipe.toml", "[pairing]\nbbox_distance_threshold = -1\n")

	_, _, err := execute(t, newPairsCmd(), "--scene", writeScene(t), "--config", config)
	if !errors.Is(err, m.ErrInvalidThreshold) {
		t.Fatalf("Execute() error = %v, want ErrInvalidThreshold", err)
	}
}

func TestRootCmd_LogLevelOverride(t *testing.T) {
	useSimpleUI(t)

	_, errOut, err := execute(t, newPairsCmd(), "--scene", writeScene(t), "--log-level", "debug")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(errOut, "config loaded") {
		t.Fatalf("debug log missing\nstderr:\n%s", errOut)
	}

	if _, _, err := execute(t, newPairsCmd(), "--scene", writeScene(t), "--log-level", "loud"); err == nil {
		t.Fatalf("Execute() with unknown log level expected error")
	}
}

func TestRootCmd_EnvFile(t *testing.T) {
	useSimpleUI(t)

	t.Setenv(config.EnvFFmpeg, "")
	os.Unsetenv(config.EnvFFmpeg)

	env := writeFile(t, ".env", "FXPIPE_FFMPEG=/opt/ffmpeg/bin/ffmpeg\n")

	if _, _, err := execute(t, newPairsCmd(), "--scene", writeScene(t), "--env-file", env); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := cfg.EncodeSettings().FFmpeg; got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("FFmpeg = %q, want value from the env file", got)
	}
}
