package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"solar-system/internal/scenegraph"
)

func testController() *Controller {
	return &Controller{
		Start: Pose{
			Position: mgl64.Vec3{0, 140, 460},
			Rotation: scenegraph.Euler{X: -0.3},
		},
		End: Pose{
			Position: mgl64.Vec3{60, 20, 100},
			Rotation: scenegraph.Euler{X: -0.1, Y: 0.4},
		},
		Distance: 2000,
	}
}

func TestProgress(t *testing.T) {
	c := testController()
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{-1000, 0.5},
		{-2000, 1},
		{-5000, 1},
		{300, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Progress(tt.offset), "offset %v", tt.offset)
	}

	zero := &Controller{}
	assert.Zero(t, zero.Progress(-100))
}

func TestOnScrollEndpointsAreExact(t *testing.T) {
	c := testController()
	cam := New(Pose{}, 45)

	assert.Zero(t, c.OnScroll(cam, 0))
	assert.Equal(t, c.Start, cam.Pose)

	assert.Equal(t, 1.0, c.OnScroll(cam, -5000))
	assert.Equal(t, c.End, cam.Pose)
}

func TestOnScrollHalfway(t *testing.T) {
	c := testController()
	cam := New(Pose{}, 45)
	p := c.OnScroll(cam, -1000)
	assert.Equal(t, 0.5, p)

	assert.InDelta(t, 30, cam.Position[0], 1e-9)
	assert.InDelta(t, 80, cam.Position[1], 1e-9)
	assert.InDelta(t, 280, cam.Position[2], 1e-9)
	assert.InDelta(t, -0.2, cam.Rotation.X, 1e-9)
	assert.InDelta(t, 0.2, cam.Rotation.Y, 1e-9)
}

func TestOnScrollIsIdempotent(t *testing.T) {
	c := testController()
	cam := New(Pose{}, 45)

	c.OnScroll(cam, -700)
	first := cam.Pose
	c.OnScroll(cam, -1900)
	c.OnScroll(cam, -700)
	c.OnScroll(cam, -700)
	assert.Equal(t, first, cam.Pose)
	assert.Equal(t, c.PoseAt(-700), cam.Pose)
}

func TestOnScrollMonotonic(t *testing.T) {
	c := testController()
	prev := c.PoseAt(0)
	for off := -100.0; off >= -3000; off -= 100 {
		cur := c.PoseAt(off)
		assert.LessOrEqual(t, cur.Position[2], prev.Position[2])
		assert.GreaterOrEqual(t, cur.Position[0], prev.Position[0])
		prev = cur
	}
}

func TestOnScrollLeavesAspect(t *testing.T) {
	c := testController()
	cam := New(Pose{}, 45)
	cam.SetViewport(800, 600)
	c.OnScroll(cam, -1234)
	assert.InDelta(t, 800.0/600.0, cam.Aspect, 1e-12)
	assert.Equal(t, 45.0, cam.FovyDeg)
}

func TestSetViewport(t *testing.T) {
	cam := New(Pose{Position: mgl64.Vec3{1, 2, 3}, Rotation: scenegraph.Euler{X: 0.5}}, 45)
	before := cam.Pose

	cam.SetViewport(1920, 1080)
	assert.InDelta(t, 1920.0/1080.0, cam.Aspect, 1e-12)
	assert.Equal(t, before, cam.Pose)

	cam.SetViewport(0, 1080)
	assert.InDelta(t, 1920.0/1080.0, cam.Aspect, 1e-12)
}

// assertVec compares component-wise with an absolute tolerance.
func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestForwardAndUp(t *testing.T) {
	cam := New(Pose{}, 45)
	assertVec(t, mgl64.Vec3{0, 0, -1}, cam.Forward())
	assertVec(t, mgl64.Vec3{0, 1, 0}, cam.Up())

	// Pitching down a quarter turn looks along -Y; cos(π/2) leaves a ~6e-17 residue in Z.
	cam.Rotation.X = -math.Pi / 2
	assertVec(t, mgl64.Vec3{0, -1, 0}, cam.Forward())
	assertVec(t, mgl64.Vec3{0, 0, -1}, cam.Up())

	cam.Position = mgl64.Vec3{5, 5, 5}
	assertVec(t, mgl64.Vec3{5, 4, 5}, cam.Target())
}

func TestScrollTracker(t *testing.T) {
	s := &ScrollTracker{Distance: 2000, PixelsPerNotch: 100}
	assert.Equal(t, -100.0, s.Apply(-1))
	assert.Equal(t, -600.0, s.Apply(-5))
	assert.Equal(t, -2000.0, s.Apply(-50))
	assert.Equal(t, -1900.0, s.Apply(1))
	assert.Equal(t, 0.0, s.Apply(100))
}
