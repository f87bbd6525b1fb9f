package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.InDelta(t, 0, x.Dot(y), 1e-12)
	assert.InDelta(t, 5, Vec3{3, 4, 0}.Length(), 1e-12)
	assert.Equal(t, Vec3{0, 0, 0}, Vec3{}.Normalize())
	assert.InDelta(t, 1, Vec3{2, 2, 1}.Normalize().Length(), 1e-12)
}

func TestVec3IsParallel(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want bool
	}{
		{"same direction", Vec3{1, 0, 0}, Vec3{5, 0, 0}, true},
		{"opposite direction", Vec3{1, 1, 0}, Vec3{-2, -2, 0}, true},
		{"orthogonal", Vec3{1, 0, 0}, Vec3{0, 1, 0}, false},
		{"zero vector", Vec3{}, Vec3{0, 1, 0}, true},
		{"slightly off", Vec3{1, 0, 0}, Vec3{1, 0.001, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.IsParallel(tt.b))
		})
	}
}

func TestBoundingBoxOf(t *testing.T) {
	box := BoundingBoxOf([]Vec3{{1, -2, 3}, {-1, 4, 0}, {0, 0, 5}})

	assert.Equal(t, Vec3{-1, -2, 0}, box.Min)
	assert.Equal(t, Vec3{1, 4, 5}, box.Max)
	assert.Equal(t, Vec3{0, 1, 2.5}, box.Center())
	assert.Equal(t, BoundingBox{}, BoundingBoxOf(nil))
}

func TestMatrixDistance(t *testing.T) {
	identity := IdentityMatrix()
	assert.InDelta(t, 0, identity.Distance(identity), 1e-12)

	moved := identity
	moved[12] = 1
	assert.InDelta(t, 1, identity.Distance(moved), 1e-12)

	frame := FrameMatrix(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{})
	assert.Equal(t, identity, frame)

	rotated := FrameMatrix(Vec3{0, 1, 0}, Vec3{-1, 0, 0}, Vec3{0, 0, 1}, Vec3{})
	assert.InDelta(t, 4, identity.Distance(rotated), 1e-12)
	assert.False(t, math.IsNaN(rotated.Distance(identity)))
}
