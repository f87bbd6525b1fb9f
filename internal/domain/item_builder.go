package domain

import (
	"strings"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// CleanName strips namespaces from every segment of a scene path.
func CleanName(path string) string {
	segments := strings.Split(path, "|")
	for i, segment := range segments {
		if idx := strings.LastIndex(segment, ":"); idx >= 0 {
			segments[i] = segment[idx+1:]
		}
	}

	return strings.Join(segments, "|")
}

// WorldFrame derives an orthonormal frame from the first non-collinear
// vertices of points. It returns false when no frame exists.
func WorldFrame(points []m.Vec3) (m.Matrix4, bool) {
	if len(points) < 3 {
		return m.Matrix4{}, false
	}

	origin := points[0]

	xAxis := points[1].Sub(origin)
	if xAxis.Length() == 0 {
		return m.Matrix4{}, false
	}

	xAxis = xAxis.Normalize()

	var yAxis m.Vec3

	found := false

	for _, p := range points[2:] {
		yAxis = p.Sub(origin)
		if !yAxis.IsParallel(xAxis) {
			found = true

			break
		}
	}

	if !found {
		return m.Matrix4{}, false
	}

	yAxis = yAxis.Normalize()
	zAxis := xAxis.Cross(yAxis).Normalize()
	yAxis = zAxis.Cross(xAxis)

	return m.FrameMatrix(xAxis, yAxis, zAxis, origin), true
}

// BuildItem turns a scene node into an Item of the given role. It returns
// false when the mesh is degenerate, in which case the node is dropped.
func BuildItem(role m.Role, node m.SceneNode, displayName string) (*m.Item, bool) {
	frame, ok := WorldFrame(node.Points)
	if !ok {
		return nil, false
	}

	bounds := m.BoundingBoxOf(node.Points)
	if node.Bounds != nil {
		bounds = *node.Bounds
	}

	if displayName == "" {
		displayName = node.Path
	}

	return &m.Item{
		Name:           CleanName(displayName),
		DisplayName:    displayName,
		FullPath:       node.Path,
		Role:           role,
		PointCount:     len(node.Points),
		VertexPosition: node.Points[0],
		BoundingBox:    bounds,
		WorldMatrix:    frame,
	}, true
}
