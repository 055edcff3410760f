package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"solar-system/internal/scenegraph"
)

// Pose is a camera position plus orientation. With zero rotation the camera looks down -Z with +Y up.
type Pose struct {
	Position mgl64.Vec3
	Rotation scenegraph.Euler
}

// Camera is the scene camera state. Only the scroll handler changes Pose;
// only the resize handler changes Aspect.
type Camera struct {
	Pose
	FovyDeg float64
	Aspect  float64
}

// New returns a camera at pose with the given vertical field of view and a 16:9 aspect.
func New(pose Pose, fovyDeg float64) *Camera {
	return &Camera{Pose: pose, FovyDeg: fovyDeg, Aspect: 16.0 / 9.0}
}

// SetViewport updates the aspect ratio for a new viewport size. Non-positive sizes
// (a minimised window) are ignored so the aspect never becomes zero or infinite.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

func (c *Camera) rotation() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(c.Rotation.X).
		Mul4(mgl64.HomogRotate3DY(c.Rotation.Y)).
		Mul4(mgl64.HomogRotate3DZ(c.Rotation.Z))
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return mgl64.TransformNormal(mgl64.Vec3{0, 0, -1}, c.rotation()).Normalize()
}

// Up returns the unit up direction.
func (c *Camera) Up() mgl64.Vec3 {
	return mgl64.TransformNormal(mgl64.Vec3{0, 1, 0}, c.rotation()).Normalize()
}

// Target returns a point one unit ahead of the camera, for look-at style renderers.
func (c *Camera) Target() mgl64.Vec3 {
	return c.Position.Add(c.Forward())
}
