package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// Environment variables read by the tools.
const (
	EnvArtist      = "FXPIPE_ARTIST"
	EnvUsername    = "USERNAME"
	EnvUser        = "USER"
	EnvOCIOConfig  = "FXPIPE_OCIO_CONFIG"
	EnvOCIOLib     = "FXPIPE_OCIO_LIB"
	EnvOCIOConvert = "FXPIPE_OCIOCONVERT"
	EnvFFmpeg      = "FXPIPE_FFMPEG"
)

// Pairing holds the pair connector defaults.
type Pairing struct {
	DetectionMode           string  `toml:"detection_mode"`
	BBoxDistanceThreshold   float64 `toml:"bbox_distance_threshold"`
	VertexDistanceThreshold float64 `toml:"vertex_distance_threshold"`
	ConnectionMode          string  `toml:"connection_mode"`
	InheritVisibility       bool    `toml:"inherit_visibility"`
	InheritTransform        bool    `toml:"inherit_transform"`
	AllowMultiPairs         bool    `toml:"allow_multi_pairs"`
}

// Encode holds the review movie encoder settings.
type Encode struct {
	Threads     int    `toml:"threads"`
	Production  string `toml:"production"`
	Artist      string `toml:"artist"`
	OCIOConvert string `toml:"ocioconvert"`
	OCIOConfig  string `toml:"ocio_config"`
	OCIOLib     string `toml:"ocio_lib"`
	InProfile   string `toml:"in_profile"`
	OutProfile  string `toml:"out_profile"`
	FFmpeg      string `toml:"ffmpeg"`
	FontNormal  string `toml:"font_normal"`
	FontBold    string `toml:"font_bold"`
	FrameRate   string `toml:"frame_rate"`
	Codec       string `toml:"codec"`
	Bitrate     string `toml:"bitrate"`
	TempFolder  string `toml:"temp_folder"`
	Opener      string `toml:"opener"`
}

// Log holds logger settings.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the whole fxpipe configuration.
type Config struct {
	Pairing Pairing `toml:"pairing"`
	Encode  Encode  `toml:"encode"`
	Log     Log     `toml:"log"`
}

// LoadEnv loads .env files into the process environment. Missing files are
// ignored; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

// Load reads path, applies environment fallbacks and validates the result.
// It reports whether the file existed. An empty path means DefaultPath.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	exists := true

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		exists = false
	case err != nil:
		return nil, false, fmt.Errorf("read config: %w", err)
	default:
		if err := Parse(data, &cfg); err != nil {
			return nil, false, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	return &cfg, exists, nil
}

// Parse decodes TOML data over cfg. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if c.Encode.Artist == "" {
		c.Encode.Artist = firstEnv(EnvArtist, EnvUsername, EnvUser)
	}

	overrides := map[string]*string{
		EnvOCIOConfig:  &c.Encode.OCIOConfig,
		EnvOCIOLib:     &c.Encode.OCIOLib,
		EnvOCIOConvert: &c.Encode.OCIOConvert,
		EnvFFmpeg:      &c.Encode.FFmpeg,
	}

	for key, field := range overrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*field = value
		}
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}

	return ""
}

// PairingConfig converts the [pairing] section to the session config.
func (c *Config) PairingConfig() (m.PairingConfig, error) {
	detection, err := m.ParseDetectionMode(c.Pairing.DetectionMode)
	if err != nil {
		return m.PairingConfig{}, err
	}

	connection, err := m.ParseConnectionMode(c.Pairing.ConnectionMode)
	if err != nil {
		return m.PairingConfig{}, err
	}

	return m.PairingConfig{
		DetectionMode:           detection,
		BBoxDistanceThreshold:   c.Pairing.BBoxDistanceThreshold,
		VertexDistanceThreshold: c.Pairing.VertexDistanceThreshold,
		ConnectionMode:          connection,
		InheritVisibility:       c.Pairing.InheritVisibility,
		InheritTransform:        c.Pairing.InheritTransform,
		AllowMultiPairs:         c.Pairing.AllowMultiPairs,
	}, nil
}

// EncodeSettings converts the [encode] section to encoder settings.
func (c *Config) EncodeSettings() m.EncodeSettings {
	e := c.Encode

	return m.EncodeSettings{
		Threads:     e.Threads,
		Production:  e.Production,
		Artist:      e.Artist,
		OCIOConvert: e.OCIOConvert,
		OCIOConfig:  e.OCIOConfig,
		OCIOLib:     e.OCIOLib,
		InProfile:   e.InProfile,
		OutProfile:  e.OutProfile,
		FFmpeg:      e.FFmpeg,
		FontNormal:  e.FontNormal,
		FontBold:    e.FontBold,
		FrameRate:   e.FrameRate,
		Codec:       e.Codec,
		Bitrate:     e.Bitrate,
		TempFolder:  e.TempFolder,
		Opener:      e.Opener,
	}
}
