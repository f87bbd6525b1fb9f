package controller

import (
	"fmt"
	"strings"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

func onOff(value bool) string {
	if value {
		return "on"
	}

	return "off"
}

// configSummary describes the active pairing settings on one line.
func configSummary(cfg m.PairingConfig) string {
	parts := []string{"detection " + cfg.DetectionMode.String()}

	switch cfg.DetectionMode {
	case m.DetectDistance:
		parts = append(parts, fmt.Sprintf("threshold %g", cfg.BBoxDistanceThreshold))
	case m.DetectVertex:
		parts = append(parts, fmt.Sprintf("threshold %g", cfg.VertexDistanceThreshold))
	case m.DetectName, m.DetectTransform:
	}

	parts = append(parts,
		"connection "+cfg.ConnectionMode.String(),
		"visibility "+onOff(cfg.InheritVisibility),
		"transform "+onOff(cfg.InheritTransform),
		"multi pairs "+onOff(cfg.AllowMultiPairs),
	)

	return strings.Join(parts, "  ")
}

func overrideMark(row m.DisplayRow) string {
	switch {
	case row.OverrideAdded && row.OverrideRemoved:
		return "+-"
	case row.OverrideAdded:
		return "+"
	case row.OverrideRemoved:
		return "-"
	default:
		return ""
	}
}

func stateLabel(state m.PairState) string {
	switch state {
	case m.StatePaired:
		return "paired"
	case m.StateMultiPaired:
		return "multi"
	default:
		return "unpaired"
	}
}

func countStatus(results []m.ConnectResult, status m.ConnectStatus) int {
	n := 0

	for _, r := range results {
		if r.Status == status {
			n++
		}
	}

	return n
}

func connectLabel(canConnect bool) string {
	if canConnect {
		return "connect enabled"
	}

	return "connect disabled: an item has several pairs"
}
