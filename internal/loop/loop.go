package loop

import (
	"fmt"
	"time"

	"solar-system/internal/solar"
)

// Renderer draws the current scene and camera. It is called exactly once per Tick.
type Renderer interface {
	Render(ctx *solar.SceneContext)
}

// Event is a host input handled synchronously between frames.
type Event interface {
	event()
}

// ScrollEvent carries the page-style scroll offset (0 at the top, negative further down).
type ScrollEvent struct {
	Offset float64
}

// ResizeEvent carries the new viewport size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (ScrollEvent) event() {}
func (ResizeEvent) event() {}

// Loop advances every body once per tick and then renders. It is single-threaded and
// not reentrant: Tick and Handle must be called from the same goroutine, one at a time.
// There is no stop condition; the host ends the loop by no longer calling Tick.
type Loop struct {
	ctx      *solar.SceneContext
	renderer Renderer
	pulse    *SunPulse
	now      func() time.Time
	start    time.Time
	frames   uint64
}

// New returns a loop over ctx. pulse may be nil to disable the sun glow animation.
func New(ctx *solar.SceneContext, r Renderer, pulse *SunPulse) *Loop {
	return &Loop{ctx: ctx, renderer: r, pulse: pulse, now: time.Now}
}

// SetClock replaces the wall clock used by the sun pulse.
func (l *Loop) SetClock(now func() time.Time) {
	l.now = now
}

// Frames returns the number of completed ticks.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Tick advances each body in registry order using the prebuilt id map, updates the
// sun pulse, then issues a single render call.
func (l *Loop) Tick() {
	for _, p := range l.ctx.Registry.All() {
		n, ok := l.ctx.Node(p.ID)
		if !ok {
			continue
		}
		solar.Advance(n, p.RotationDays, p.OrbitalDays, l.ctx.Rates)
	}
	if l.pulse != nil {
		if l.start.IsZero() {
			l.start = l.now()
		}
		l.pulse.Apply(l.ctx, l.now().Sub(l.start))
	}
	l.renderer.Render(l.ctx)
	l.frames++
}

// Handle applies one host event to the scene context before returning.
func (l *Loop) Handle(ev Event) error {
	switch e := ev.(type) {
	case ScrollEvent:
		l.ctx.ScrollProgress = l.ctx.Control.OnScroll(l.ctx.Camera, e.Offset)
	case ResizeEvent:
		l.ctx.Camera.SetViewport(e.Width, e.Height)
	default:
		return fmt.Errorf("loop: unknown event %T", ev)
	}
	return nil
}
