package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// ImageFSAdapter abstracts the filesystem operations of the movie encoder so
// the workflow can be tested without touching the disk.
type ImageFSAdapter interface {
	// ListFrames returns the files of dir whose extension is ext, sorted.
	ListFrames(dir m.Path, ext string) ([]m.Path, error)

	// MkdirAll creates path and its parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes path and everything below it.
	RemoveAll(path m.Path) error
}

// LocalImageFSAdapter implements ImageFSAdapter on the local disk.
type LocalImageFSAdapter struct{}

// NewLocalImageFSAdapter constructs a LocalImageFSAdapter.
func NewLocalImageFSAdapter() *LocalImageFSAdapter {
	return &LocalImageFSAdapter{}
}

// ListFrames lists the frames of dir with extension ext.
func (a *LocalImageFSAdapter) ListFrames(dir m.Path, ext string) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("list frames in %s: %w", dir, err)
	}

	suffix := "." + strings.TrimPrefix(ext, ".")

	var frames []m.Path

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), suffix) {
			continue
		}

		frames = append(frames, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	sort.Slice(frames, func(i, j int) bool { return frames[i] < frames[j] })

	return frames, nil
}

// MkdirAll creates path.
func (a *LocalImageFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// RemoveAll deletes path.
func (a *LocalImageFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}
