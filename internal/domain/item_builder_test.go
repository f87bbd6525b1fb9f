package domain

import (
	"testing"

	m "github.com/nwave-fx/fxpipe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "|grp|cube", CleanName("|ns:grp|ns:sub:cube"))
	assert.Equal(t, "cube", CleanName("cube"))
}

func TestWorldFrame(t *testing.T) {
	frame, ok := WorldFrame([]m.Vec3{{0, 0, 0}, {2, 0, 0}, {4, 0, 0}, {0, 3, 0}})
	require.True(t, ok)
	assert.InDelta(t, 0, frame.Distance(m.IdentityMatrix()), 1e-9)

	shifted, ok := WorldFrame([]m.Vec3{{1, 2, 3}, {2, 2, 3}, {1, 3, 3}})
	require.True(t, ok)
	assert.Equal(t, m.Vec3{1, 2, 3}, m.Vec3{shifted[12], shifted[13], shifted[14]})
}

func TestWorldFrame_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []m.Vec3
	}{
		{"too few points", []m.Vec3{{0, 0, 0}, {1, 0, 0}}},
		{"coincident first points", []m.Vec3{{0, 0, 0}, {0, 0, 0}, {0, 1, 0}}},
		{"collinear", []m.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {-3, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := WorldFrame(tt.points)
			assert.False(t, ok)
		})
	}
}

func TestBuildItem(t *testing.T) {
	node := cubeNode("|ns:grp|ns:cube", m.Vec3{0, 0, 5})

	item, ok := BuildItem(m.RoleDestination, node, "ns:grp|ns:cube")
	require.True(t, ok)

	assert.Equal(t, "grp|cube", item.Name)
	assert.Equal(t, "ns:grp|ns:cube", item.DisplayName)
	assert.Equal(t, "|ns:grp|ns:cube", item.FullPath)
	assert.Equal(t, m.RoleDestination, item.Role)
	assert.Equal(t, 8, item.PointCount)
	assert.Equal(t, m.Vec3{-1, -1, 4}, item.VertexPosition)
	assert.Equal(t, m.Vec3{-1, -1, 4}, item.BoundingBox.Min)
	assert.Equal(t, m.Vec3{1, 1, 6}, item.BoundingBox.Max)
}

func TestBuildItem_ExplicitBoundsAndFallbackName(t *testing.T) {
	node := cubeNode("|cube", m.Vec3{})
	node.Bounds = &m.BoundingBox{Min: m.Vec3{-2, -2, -2}, Max: m.Vec3{2, 2, 2}}

	item, ok := BuildItem(m.RoleSource, node, "")
	require.True(t, ok)
	assert.Equal(t, "|cube", item.DisplayName)
	assert.Equal(t, m.Vec3{2, 2, 2}, item.BoundingBox.Max)
}

func TestBuildItem_Degenerate(t *testing.T) {
	node := m.SceneNode{Path: "|line", NodeType: "transform", ShapeType: "mesh", Points: []m.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}}

	_, ok := BuildItem(m.RoleSource, node, "line")
	assert.False(t, ok)
}
