// Package controller renders pair connector and encoder output and drives the
// interactive pair editor.
package controller

import (
	"context"
	"errors"

	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// ErrInteractiveOnly is returned by UIs that cannot host the pair editor.
var ErrInteractiveOnly = errors.New("pair editor needs an interactive terminal")

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePairs StartMode = iota
	ModeEncode
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPairsMode sets the UI to static pair listing.
func WithPairsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePairs
	}
}

// WithEncodeMode sets the UI to encode progress.
func WithEncodeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEncode
	}
}

// PairsView is a snapshot of a session for display.
type PairsView struct {
	Sources      []m.DisplayRow
	Destinations []m.DisplayRow
	Config       m.PairingConfig
	CanConnect   bool
}

// NewPairsView captures the current rows and gate of session.
func NewPairsView(session *domain.Session) PairsView {
	return PairsView{
		Sources:      session.DisplayRows(m.RoleSource),
		Destinations: session.DisplayRows(m.RoleDestination),
		Config:       session.Config(),
		CanConnect:   session.CanConnect(),
	}
}

// Rows returns the rows of role.
func (v PairsView) Rows(role m.Role) []m.DisplayRow {
	if role == m.RoleDestination {
		return v.Destinations
	}

	return v.Sources
}

// UI defines the interface for showing pair connector and encoder output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayPairs(view PairsView) error
	DisplayConnectResults(results []m.ConnectResult, err error) error
	DisplayPlan(plan m.Plan, path m.Path) error
	DisplayEncodeStart(seq m.ImageSequence, threads int)
	DisplayEncodeProgress(progress m.EncodeProgress)
	DisplayEncodeDone(movie m.Path, err error)
	PromptTitle() (string, error)
	EditPairs(ctx context.Context, conn domain.Connector) error
}
