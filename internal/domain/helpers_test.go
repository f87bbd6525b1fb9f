package domain

import (
	"testing"

	m "github.com/nwave-fx/fxpipe/internal/model"
	"github.com/stretchr/testify/require"
)

func testItem(role m.Role, name string) *m.Item {
	return &m.Item{
		Name:        CleanName(name),
		DisplayName: name,
		FullPath:    "|" + name,
		Role:        role,
		WorldMatrix: m.IdentityMatrix(),
	}
}

func testSource(name string) *m.Item {
	return testItem(m.RoleSource, name)
}

func testDestination(name string) *m.Item {
	return testItem(m.RoleDestination, name)
}

func cubeNode(path string, offset m.Vec3) m.SceneNode {
	corners := []m.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	}

	points := make([]m.Vec3, len(corners))
	for i, c := range corners {
		points[i] = c.Add(offset)
	}

	return m.SceneNode{Path: path, NodeType: "transform", ShapeType: "mesh", Points: points}
}

func newTestSession(t *testing.T, mutate func(*m.PairingConfig)) *Session {
	t.Helper()

	cfg := m.DefaultPairingConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	s, err := NewSession(cfg, nil)
	require.NoError(t, err)

	return s
}

func keys(connections []m.Connection) []m.ConnectionKey {
	result := make([]m.ConnectionKey, 0, len(connections))
	for _, c := range connections {
		result = append(result, c.Key())
	}

	return result
}
