package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/adapter"
	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// sceneSource is a scene that also remembers which nodes were picked per role.
type sceneSource interface {
	adapter.SceneAdapter
	SavedSelection(role m.Role) ([]string, error)
}

var sceneFlag string
var modeFlag string
var bboxThresholdFlag float64
var vertexThresholdFlag float64
var allowMultiFlag bool
var overrideFlags []string
var suppressFlags []string
var connectionModeFlag string
var inheritVisibilityFlag bool
var inheritTransformFlag bool

func addPairingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sceneFlag, "scene", "", "scene snapshot file (YAML)")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "detection mode: distance, vertex, transform or name")
	cmd.Flags().Float64Var(&bboxThresholdFlag, "bbox-threshold", 0, "bounding box distance threshold")
	cmd.Flags().Float64Var(&vertexThresholdFlag, "vertex-threshold", 0, "vertex distance threshold")
	cmd.Flags().BoolVar(&allowMultiFlag, "allow-multi", false, "allow items with several pairs to be connected")
	cmd.Flags().StringArrayVar(&overrideFlags, "override", nil, "force a pair, as source=destination (can be repeated)")
	cmd.Flags().StringArrayVar(&suppressFlags, "suppress", nil, "drop a pair, as source=destination (can be repeated)")
	_ = cmd.MarkFlagRequired("scene")
}

func addConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&connectionModeFlag, "connection-mode", "", "connection mode: inmesh, blendshape, wrap or parent")
	cmd.Flags().BoolVar(&inheritVisibilityFlag, "inherit-visibility", true, "connect visibility of paired meshes")
	cmd.Flags().BoolVar(&inheritTransformFlag, "inherit-transform", false, "connect transforms of paired meshes")
}

// pairingConfig returns the configured pairing settings with explicit flags
// applied on top.
func pairingConfig(cmd *cobra.Command) (m.PairingConfig, error) {
	pc, err := cfg.PairingConfig()
	if err != nil {
		return m.PairingConfig{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("mode") {
		if pc.DetectionMode, err = m.ParseDetectionMode(modeFlag); err != nil {
			return m.PairingConfig{}, err
		}
	}

	if flags.Changed("bbox-threshold") {
		pc.BBoxDistanceThreshold = bboxThresholdFlag
	}

	if flags.Changed("vertex-threshold") {
		pc.VertexDistanceThreshold = vertexThresholdFlag
	}

	if flags.Changed("allow-multi") {
		pc.AllowMultiPairs = allowMultiFlag
	}

	if flags.Changed("connection-mode") {
		if pc.ConnectionMode, err = m.ParseConnectionMode(connectionModeFlag); err != nil {
			return m.PairingConfig{}, err
		}
	}

	if flags.Changed("inherit-visibility") {
		pc.InheritVisibility = inheritVisibilityFlag
	}

	if flags.Changed("inherit-transform") {
		pc.InheritTransform = inheritTransformFlag
	}

	return pc, pc.Validate()
}

// openConnector builds a session from the scene file: the saved source and
// destination picks are loaded, then the override flags are applied.
func openConnector(ctx context.Context, cmd *cobra.Command) (domain.Connector, error) {
	pc, err := pairingConfig(cmd)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(pc, logger)
	if err != nil {
		return nil, err
	}

	scene := newScene(sceneFlag, logger)
	conn := newConnector(scene, planStore, session, logger)

	for _, role := range m.Roles {
		paths, err := scene.SavedSelection(role)
		if err != nil {
			return nil, err
		}

		if len(paths) == 0 {
			continue
		}

		if _, err := conn.LoadPaths(ctx, role, paths); err != nil {
			return nil, err
		}
	}

	if err := applyPairFlags(session, overrideFlags, session.AddOverride); err != nil {
		return nil, err
	}

	if err := applyPairFlags(session, suppressFlags, session.RemoveOverride); err != nil {
		return nil, err
	}

	return conn, nil
}

func parsePairFlag(value string) (string, string, error) {
	source, destination, ok := strings.Cut(value, "=")
	source, destination = strings.TrimSpace(source), strings.TrimSpace(destination)

	if !ok || source == "" || destination == "" {
		return "", "", fmt.Errorf("invalid pair %q, want source=destination", value)
	}

	return source, destination, nil
}

func applyPairFlags(session *domain.Session, values []string, apply func(a, b *m.Item) error) error {
	for _, value := range values {
		sourceName, destinationName, err := parsePairFlag(value)
		if err != nil {
			return err
		}

		source, ok := session.Item(m.RoleSource, sourceName)
		if !ok {
			return fmt.Errorf("%w: source %q", m.ErrItemNotFound, sourceName)
		}

		destination, ok := session.Item(m.RoleDestination, destinationName)
		if !ok {
			return fmt.Errorf("%w: destination %q", m.ErrItemNotFound, destinationName)
		}

		if err := apply(source, destination); err != nil {
			return err
		}
	}

	return nil
}
