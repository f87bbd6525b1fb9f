package model

import (
	"fmt"
	"math"
	"strings"
)

// MatrixDistanceThreshold is the fixed bound used by TRANSFORM detection.
const MatrixDistanceThreshold = 0.01

// DetectionMode selects the comparator used to detect pairs.
type DetectionMode int

// Available DetectionMode values.
const (
	DetectDistance DetectionMode = iota
	DetectVertex
	DetectTransform
	DetectName
)

// DetectionModes lists every detection mode.
var DetectionModes = []DetectionMode{DetectDistance, DetectVertex, DetectTransform, DetectName}

func (d DetectionMode) String() string {
	switch d {
	case DetectDistance:
		return "distance"
	case DetectVertex:
		return "vertex"
	case DetectTransform:
		return "transform"
	case DetectName:
		return "name"
	default:
		return fmt.Sprintf("detection(%d)", int(d))
	}
}

// Valid reports whether d is a declared mode.
func (d DetectionMode) Valid() bool {
	return d >= DetectDistance && d <= DetectName
}

// Next cycles to the following detection mode.
func (d DetectionMode) Next() DetectionMode {
	return DetectionModes[(int(d)+1)%len(DetectionModes)]
}

// ParseDetectionMode converts a mode name into a DetectionMode.
func ParseDetectionMode(s string) (DetectionMode, error) {
	for _, mode := range DetectionModes {
		if strings.EqualFold(strings.TrimSpace(s), mode.String()) {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("%w: detection mode %q", ErrUnknownMode, s)
}

// ConnectionMode selects how a confirmed pair is realised in the host scene.
type ConnectionMode int

// Available ConnectionMode values.
const (
	ConnectInMeshOutMesh ConnectionMode = iota
	ConnectBlendShape
	ConnectWrap
	ConnectParent
)

// ConnectionModes lists every connection mode.
var ConnectionModes = []ConnectionMode{ConnectInMeshOutMesh, ConnectBlendShape, ConnectWrap, ConnectParent}

func (c ConnectionMode) String() string {
	switch c {
	case ConnectInMeshOutMesh:
		return "inmesh"
	case ConnectBlendShape:
		return "blendshape"
	case ConnectWrap:
		return "wrap"
	case ConnectParent:
		return "parent"
	default:
		return fmt.Sprintf("connection(%d)", int(c))
	}
}

// Valid reports whether c is a declared mode.
func (c ConnectionMode) Valid() bool {
	return c >= ConnectInMeshOutMesh && c <= ConnectParent
}

// Next cycles to the following connection mode.
func (c ConnectionMode) Next() ConnectionMode {
	return ConnectionModes[(int(c)+1)%len(ConnectionModes)]
}

// ParseConnectionMode converts a mode name into a ConnectionMode.
func ParseConnectionMode(s string) (ConnectionMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "in_mesh_out_mesh" || name == "inmesh_outmesh" {
		return ConnectInMeshOutMesh, nil
	}

	for _, mode := range ConnectionModes {
		if name == mode.String() {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("%w: connection mode %q", ErrUnknownMode, s)
}

// PairingConfig holds the per-session pairing settings.
type PairingConfig struct {
	DetectionMode           DetectionMode
	BBoxDistanceThreshold   float64
	VertexDistanceThreshold float64
	ConnectionMode          ConnectionMode
	InheritVisibility       bool
	InheritTransform        bool
	AllowMultiPairs         bool
}

// DefaultPairingConfig returns the settings a new session starts with.
func DefaultPairingConfig() PairingConfig {
	return PairingConfig{
		DetectionMode:           DetectName,
		BBoxDistanceThreshold:   0.001,
		VertexDistanceThreshold: 0.001,
		ConnectionMode:          ConnectBlendShape,
		InheritVisibility:       true,
		InheritTransform:        false,
		AllowMultiPairs:         false,
	}
}

// ValidThreshold reports whether v is a usable distance threshold: finite and
// strictly positive.
func ValidThreshold(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Validate checks modes and thresholds.
func (c PairingConfig) Validate() error {
	if !c.DetectionMode.Valid() {
		return fmt.Errorf("%w: detection mode %d", ErrUnknownMode, int(c.DetectionMode))
	}

	if !c.ConnectionMode.Valid() {
		return fmt.Errorf("%w: connection mode %d", ErrUnknownMode, int(c.ConnectionMode))
	}

	if !ValidThreshold(c.BBoxDistanceThreshold) {
		return fmt.Errorf("bbox distance: %w", ErrInvalidThreshold)
	}

	if !ValidThreshold(c.VertexDistanceThreshold) {
		return fmt.Errorf("vertex distance: %w", ErrInvalidThreshold)
	}

	return nil
}
