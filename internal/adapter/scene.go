// Package adapter contains the host scene, file and process adapters used by
// the fxpipe domain layer.
package adapter

import (
	"context"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// SceneAdapter abstracts the host application the pair connector reads
// geometry from and applies connections to. Apply calls are grouped between
// Begin and Commit so the host can treat a whole connect run as one undoable
// change.
//
//nolint:interfacebloat // Mirrors the host capabilities the connector relies on.
type SceneAdapter interface {
	// Selection returns the selected transforms that carry a mesh shape.
	Selection(ctx context.Context) ([]m.SceneNode, error)

	// Node returns the node at path.
	Node(ctx context.Context, path string) (m.SceneNode, error)

	// DisplayName returns the shortest path suffix naming path uniquely.
	DisplayName(ctx context.Context, path string) (string, error)

	// Select replaces the host selection with paths.
	Select(ctx context.Context, paths []string) error

	// Begin opens a realization batch.
	Begin(ctx context.Context) error

	// Apply realises one pair. Conflicts are reported as errors wrapping
	// model.ErrLockedAttribute and leave the rest of the batch untouched.
	Apply(ctx context.Context, r m.Realization) (m.ConnectStatus, error)

	// Commit closes the batch opened by Begin.
	Commit(ctx context.Context) error
}
