package model

import "math"

// ParallelTolerance is the angular tolerance used when testing two vectors for
// parallelism.
const ParallelTolerance = 1e-10

// Vec3 is a point or direction in world space.
type Vec3 [3]float64

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the scalar product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the vector product v ^ o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Length returns the euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector is returned as is.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// IsParallel reports whether v and o point along the same line. Zero-length
// vectors are parallel to everything.
func (v Vec3) IsParallel(o Vec3) bool {
	lv, lo := v.Length(), o.Length()
	if lv == 0 || lo == 0 {
		return true
	}

	return v.Cross(o).Length() <= ParallelTolerance*lv*lo
}

// BoundingBox is a world-space axis aligned box.
type BoundingBox struct {
	Min Vec3
	Max Vec3
}

// Center returns the middle point of the box.
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// BoundingBoxOf returns the smallest box containing every point. The zero box
// is returned for an empty slice.
func BoundingBoxOf(points []Vec3) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for axis := range 3 {
			box.Min[axis] = math.Min(box.Min[axis], p[axis])
			box.Max[axis] = math.Max(box.Max[axis], p[axis])
		}
	}

	return box
}

// Matrix4 is a row-major 4x4 transform. Rows 0-2 hold the x, y and z axes and
// row 3 holds the translation.
type Matrix4 [16]float64

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FrameMatrix builds a transform from three axes and an origin.
func FrameMatrix(x, y, z, origin Vec3) Matrix4 {
	return Matrix4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		origin[0], origin[1], origin[2], 1,
	}
}

// Distance returns the sum of the element-wise absolute differences between m
// and o.
func (m Matrix4) Distance(o Matrix4) float64 {
	var d float64
	for i := range m {
		d += math.Abs(m[i] - o[i])
	}

	return d
}
