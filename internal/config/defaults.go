package config

import m "github.com/nwave-fx/fxpipe/internal/model"

const (
	// DefaultPath is the config file looked up when no path is given.
	DefaultPath = "fxpipe.toml"

	defaultDetectionMode     = "name"
	defaultConnectionMode    = "blendshape"
	defaultDistanceThreshold = 0.001
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Pairing: Pairing{
			DetectionMode:           defaultDetectionMode,
			BBoxDistanceThreshold:   defaultDistanceThreshold,
			VertexDistanceThreshold: defaultDistanceThreshold,
			ConnectionMode:          defaultConnectionMode,
			InheritVisibility:       true,
			InheritTransform:        false,
			AllowMultiPairs:         false,
		},
		Encode: Encode{
			Threads:     m.DefaultThreads,
			Production:  m.DefaultProduction,
			OCIOConvert: m.DefaultOCIOConvert,
			InProfile:   m.DefaultInProfile,
			OutProfile:  m.DefaultOutProfile,
			FFmpeg:      m.DefaultFFmpeg,
			FrameRate:   m.DefaultFrameRate,
			Codec:       m.DefaultCodec,
			Bitrate:     m.DefaultBitrate,
			TempFolder:  m.DefaultTempFolder,
			Opener:      m.DefaultOpener,
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
