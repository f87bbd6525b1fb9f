package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(Options{Level: "info", Format: "text", Output: &buf})
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("pairs rebuilt", "count", 3)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "pairs rebuilt")
		assert.Contains(t, out, "count=3")
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
		require.NoError(t, err)

		logger.Debug("frame converted", "frame", "a.0001.exr")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "frame converted", record["msg"])
		assert.Equal(t, "a.0001.exr", record["frame"])
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := New(Options{Format: "xml"})
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
