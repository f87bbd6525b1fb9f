package adapter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

func TestLocalImageFSAdapter_ListFrames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.1002.exr", "a.1001.EXR", "a.1001.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := os.Mkdir(filepath.Join(dir, "sub.exr"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	a := NewLocalImageFSAdapter()

	frames, err := a.ListFrames(m.Path(dir), "exr")
	if err != nil {
		t.Fatalf("ListFrames returned error: %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(dir, "a.1001.EXR")),
		m.Path(filepath.Join(dir, "a.1002.exr")),
	}
	if !reflect.DeepEqual(frames, want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}

	if _, err := a.ListFrames(m.Path(filepath.Join(dir, "nope")), "exr"); err == nil {
		t.Fatalf("expected error for missing folder")
	}
}

func TestLocalImageFSAdapter_MkdirAndRemove(t *testing.T) {
	t.Parallel()

	temp := m.Path(filepath.Join(t.TempDir(), "TEMP", "nested"))
	a := NewLocalImageFSAdapter()

	if err := a.MkdirAll(temp); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(string(temp), "f.png"), nil, 0o644); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	if err := a.RemoveAll(temp); err != nil {
		t.Fatalf("RemoveAll returned error: %v", err)
	}

	if _, err := os.Stat(string(temp)); !os.IsNotExist(err) {
		t.Fatalf("expected %s removed, stat err = %v", temp, err)
	}
}
