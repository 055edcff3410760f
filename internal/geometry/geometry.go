// Package geometry generates vertex data for the shapes raylib has no generator for:
// flat rings, orbit circles and star shells. Output is float32 so it can be uploaded as-is.
package geometry

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// MinSegments is the lowest segment count that still reads as a circle.
const MinSegments = 8

// AnnulusData is an indexed triangle list for a flat ring in the XY plane, facing +Z.
// Texcoords map u across the ring (0 at Inner, 1 at Outer) and v around it, so a radial
// strip texture wraps like planetary ring imagery.
type AnnulusData struct {
	Vertices  []float32 // x, y, z per vertex
	Normals   []float32
	Texcoords []float32 // u, v per vertex
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (a AnnulusData) VertexCount() int {
	return len(a.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (a AnnulusData) TriangleCount() int {
	return len(a.Indices) / 3
}

// Annulus builds a ring between inner and outer radius with the given number of segments.
// The seam is duplicated so texcoords wrap cleanly. segments below MinSegments are raised.
func Annulus(inner, outer float32, segments int) AnnulusData {
	if segments < MinSegments {
		segments = MinSegments
	}
	n := segments + 1
	a := AnnulusData{
		Vertices:  make([]float32, 0, n*2*3),
		Normals:   make([]float32, 0, n*2*3),
		Texcoords: make([]float32, 0, n*2*2),
		Indices:   make([]uint16, 0, segments*6),
	}
	for i := 0; i < n; i++ {
		v := float32(i) / float32(segments)
		sin, cos := math32.Sincos(v * 2 * math32.Pi)
		a.Vertices = append(a.Vertices,
			inner*cos, inner*sin, 0,
			outer*cos, outer*sin, 0,
		)
		a.Normals = append(a.Normals, 0, 0, 1, 0, 0, 1)
		a.Texcoords = append(a.Texcoords, 0, v, 1, v)
	}
	for i := 0; i < segments; i++ {
		in0 := uint16(i * 2)
		out0 := in0 + 1
		in1 := in0 + 2
		out1 := in0 + 3
		a.Indices = append(a.Indices, in0, out0, out1, in0, out1, in1)
	}
	return a
}

// Circle returns segments points on a circle of radius in the XY plane, starting on +X.
// The loop is closed by the caller connecting the last point to the first.
func Circle(radius float32, segments int) [][3]float32 {
	if segments < MinSegments {
		segments = MinSegments
	}
	pts := make([][3]float32, segments)
	for i := range pts {
		sin, cos := math32.Sincos(float32(i) / float32(segments) * 2 * math32.Pi)
		pts[i] = [3]float32{radius * cos, radius * sin, 0}
	}
	return pts
}

// Starfield returns count points uniformly distributed on a sphere shell of the given radius.
// The same seed always yields the same field.
func Starfield(seed int64, count int, radius float32) [][3]float32 {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	pts := make([][3]float32, count)
	for i := range pts {
		// Uniform on the sphere: z uniform in [-1,1], azimuth uniform.
		z := rng.Float32()*2 - 1
		phi := rng.Float32() * 2 * math32.Pi
		r := math32.Sqrt(1 - z*z)
		sin, cos := math32.Sincos(phi)
		pts[i] = [3]float32{radius * r * cos, radius * r * sin, radius * z}
	}
	return pts
}
