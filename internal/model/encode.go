package model

// Encoding defaults.
const (
	DefaultThreads        = 50
	DefaultProduction     = "Corgi"
	DefaultSeqShot        = "000_0000"
	DefaultTempFolder     = "TEMP"
	DefaultFrameRate      = "24"
	DefaultCodec          = "mjpeg"
	DefaultBitrate        = "96000K"
	DefaultInProfile      = "ACES - ACEScg"
	DefaultOutProfile     = "Output - sRGB (D60 sim.)"
	InImageExtension      = "exr"
	OutImageExtension     = "png"
	OutVideoExtension     = "mov"
	DefaultOCIOConvert    = "ocioconvert"
	DefaultFFmpeg         = "ffmpeg"
	DefaultOpener         = "xdg-open"
	titlePlaceholderLayer = "masterlayer"
)

// TitlesToReplace lists layer names that do not make a meaningful title.
var TitlesToReplace = []string{titlePlaceholderLayer}

// EncodeSettings configures the review movie encoder.
type EncodeSettings struct {
	Threads    int
	Production string
	Artist     string

	OCIOConvert string
	OCIOConfig  string
	OCIOLib     string
	InProfile   string
	OutProfile  string

	FFmpeg     string
	FontNormal string
	FontBold   string
	FrameRate  string
	Codec      string
	Bitrate    string

	TempFolder string
	// Opener, when set, is run with the movie path once it is written.
	Opener string
}

// DefaultEncodeSettings returns the settings used when nothing is configured.
func DefaultEncodeSettings() EncodeSettings {
	return EncodeSettings{
		Threads:     DefaultThreads,
		Production:  DefaultProduction,
		OCIOConvert: DefaultOCIOConvert,
		InProfile:   DefaultInProfile,
		OutProfile:  DefaultOutProfile,
		FFmpeg:      DefaultFFmpeg,
		FrameRate:   DefaultFrameRate,
		Codec:       DefaultCodec,
		Bitrate:     DefaultBitrate,
		TempFolder:  DefaultTempFolder,
	}
}

// EncodeProgress reports one converted frame.
type EncodeProgress struct {
	Frame Path
	Done  int
	Total int
}
