package model

// Path represents a file system path.
type Path string

// ImageSequence describes a numbered image sequence on disk.
type ImageSequence struct {
	// Dir is the folder holding the frames.
	Dir Path
	// Name is the file name without frame number and extension.
	Name string
	// StartFrame is the frame number of the file given by the user, padding kept.
	StartFrame string
	// SeqShot is the "seq_shot" token found in Name.
	SeqShot string
	// Title is the content title shown in the overlay.
	Title string
}

// Padding returns the number of digits of frame numbers.
func (s ImageSequence) Padding() int {
	return len(s.StartFrame)
}

// ConversionJob converts one input frame to one output frame.
type ConversionJob struct {
	In  Path
	Out Path
}

// MovieOverlay holds the text burnt into the review movie.
type MovieOverlay struct {
	Production string
	SeqShot    string
	Title      string
	Artist     string
	StartFrame string
}
