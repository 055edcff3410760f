package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"solar-system/internal/scenegraph"
)

// Controller maps a scroll offset to a camera pose by clamped interpolation: progress runs
// from 0 at offset 0 to 1 at offset -Distance and the pose moves linearly from Start to End.
// The result depends only on the offset, never on earlier calls.
type Controller struct {
	Start    Pose
	End      Pose
	Distance float64
}

// Progress returns clamp(-offset/Distance, 0, 1).
// Offsets grow more negative as the user scrolls down.
func (c *Controller) Progress(offset float64) float64 {
	if c.Distance <= 0 {
		return 0
	}
	return mgl64.Clamp(-offset/c.Distance, 0, 1)
}

// PoseAt returns the interpolated pose for a scroll offset.
func (c *Controller) PoseAt(offset float64) Pose {
	return Lerp(c.Start, c.End, c.Progress(offset))
}

// OnScroll sets cam to the pose for offset and returns the progress.
// It only touches the pose, never the aspect or field of view.
func (c *Controller) OnScroll(cam *Camera, offset float64) float64 {
	p := c.Progress(offset)
	cam.Pose = Lerp(c.Start, c.End, p)
	return p
}

// Lerp interpolates between two poses. p=0 yields a exactly and p=1 yields b exactly.
func Lerp(a, b Pose, p float64) Pose {
	return Pose{
		Position: mgl64.Vec3{
			lerp(a.Position[0], b.Position[0], p),
			lerp(a.Position[1], b.Position[1], p),
			lerp(a.Position[2], b.Position[2], p),
		},
		Rotation: scenegraph.Euler{
			X: lerp(a.Rotation.X, b.Rotation.X, p),
			Y: lerp(a.Rotation.Y, b.Rotation.Y, p),
			Z: lerp(a.Rotation.Z, b.Rotation.Z, p),
		},
	}
}

func lerp(a, b, p float64) float64 {
	return a*(1-p) + b*p
}

// ScrollTracker turns mouse-wheel notches into a page-style scroll offset:
// zero at the top, more negative further down, never past -Distance.
type ScrollTracker struct {
	Offset         float64
	Distance       float64
	PixelsPerNotch float64
}

// Apply adds a wheel movement (negative when scrolling down) and returns the clamped offset.
func (s *ScrollTracker) Apply(wheel float64) float64 {
	s.Offset = mgl64.Clamp(s.Offset+wheel*s.PixelsPerNotch, -s.Distance, 0)
	return s.Offset
}
