// Package domain contains the pair connector session, the pairing rules and
// the review movie encoder workflow.
package domain

import (
	"strings"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// Comparator decides whether two items form a pair.
type Comparator func(first, second *m.Item) bool

// ComparatorFor returns the comparator matching the detection mode of cfg.
// Unknown modes never pair.
func ComparatorFor(cfg m.PairingConfig) Comparator {
	switch cfg.DetectionMode {
	case m.DetectDistance:
		return func(a, b *m.Item) bool { return CompareBoundingBoxes(a, b, cfg.BBoxDistanceThreshold) }
	case m.DetectVertex:
		return func(a, b *m.Item) bool { return CompareVertices(a, b, cfg.VertexDistanceThreshold) }
	case m.DetectName:
		return CompareNames
	case m.DetectTransform:
		return CompareTransforms
	default:
		return func(_, _ *m.Item) bool { return false }
	}
}

// CompareBoundingBoxes pairs items whose min and max corners sit at the same
// offset from their box centers, within threshold.
func CompareBoundingBoxes(first, second *m.Item, threshold float64) bool {
	fc, sc := first.BoundingBox.Center(), second.BoundingBox.Center()

	minDelta := first.BoundingBox.Min.Sub(fc).Sub(second.BoundingBox.Min.Sub(sc))
	maxDelta := first.BoundingBox.Max.Sub(fc).Sub(second.BoundingBox.Max.Sub(sc))

	return minDelta.Length() <= threshold && maxDelta.Length() <= threshold
}

// CompareVertices pairs items whose reference vertices are within threshold.
func CompareVertices(first, second *m.Item, threshold float64) bool {
	return first.VertexPosition.Sub(second.VertexPosition).Length() <= threshold
}

// CompareNames pairs items when the path tokens of one name are all found in
// the other.
func CompareNames(first, second *m.Item) bool {
	a, b := nameTokens(first.Name), nameTokens(second.Name)

	return isSubset(a, b) || isSubset(b, a)
}

// CompareTransforms pairs items whose world frames are closer than
// MatrixDistanceThreshold.
func CompareTransforms(first, second *m.Item) bool {
	return first.WorldMatrix.Distance(second.WorldMatrix) <= m.MatrixDistanceThreshold
}

func nameTokens(name string) []string {
	parts := strings.Split(name, "|")
	tokens := parts[:0]

	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	return tokens
}

func isSubset(sub, set []string) bool {
	lookup := make(map[string]struct{}, len(set))
	for _, s := range set {
		lookup[s] = struct{}{}
	}

	for _, s := range sub {
		if _, ok := lookup[s]; !ok {
			return false
		}
	}

	return true
}

// DetectPairs fills the base set of handler with every source/destination pair
// accepted by the comparator of cfg, overridden or not. It returns the number
// of pairs added to the base set.
func DetectPairs(cfg m.PairingConfig, sources, destinations []*m.Item, handler *ConnectionHandler) int {
	compare := ComparatorFor(cfg)
	added := 0

	for _, source := range sources {
		for _, destination := range destinations {
			if handler.IsDetected(source, destination) {
				continue
			}

			if !compare(source, destination) {
				continue
			}

			handler.AddConnection(source, destination)
			added++
		}
	}

	return added
}
