package loop

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-system/internal/bodies"
	"solar-system/internal/camera"
	"solar-system/internal/scenegraph"
	"solar-system/internal/solar"
)

type countingRenderer struct {
	calls int
	nodes []int
}

func (r *countingRenderer) Render(ctx *solar.SceneContext) {
	r.calls++
	r.nodes = append(r.nodes, ctx.Scene.Count())
}

func newContext(t *testing.T) *solar.SceneContext {
	t.Helper()
	reg, err := bodies.Default()
	require.NoError(t, err)
	ctx, err := solar.Build(reg, solar.Options{
		AssetsDir: "assets",
		Scale:     solar.Scale{RadiusPerKm: 1.0 / 4000, DistancePerKm: 1.0 / 1000},
		Rates:     solar.DefaultRates(),
		Camera: camera.Controller{
			Start:    camera.Pose{Position: mgl64.Vec3{0, 140, 460}, Rotation: scenegraph.Euler{X: -0.3}},
			End:      camera.Pose{Position: mgl64.Vec3{60, 20, 100}, Rotation: scenegraph.Euler{X: -0.1}},
			Distance: 2000,
		},
		FovyDeg:    45,
		GlowRadius: 40,
		LightPower: 1,
	})
	require.NoError(t, err)
	return ctx
}

func TestTickAdvancesEveryBodyAndRendersOnce(t *testing.T) {
	ctx := newContext(t)
	r := &countingRenderer{}
	l := New(ctx, r, nil)

	before := map[string]scenegraph.Euler{}
	for _, p := range ctx.Registry.All() {
		n, _ := ctx.Node(p.ID)
		before[p.ID] = n.Pivot.Rotation
	}

	const ticks = 30
	for i := 0; i < ticks; i++ {
		l.Tick()
	}
	assert.Equal(t, ticks, r.calls)
	assert.Equal(t, uint64(ticks), l.Frames())

	for _, p := range ctx.Registry.All() {
		n, _ := ctx.Node(p.ID)
		assert.InDelta(t, ticks*ctx.Rates.SpinDelta(p.RotationDays), n.Body.Rotation.Y, 1e-9, p.ID)
		if p.Orbits() {
			want := before[p.ID].Y + ticks*ctx.Rates.OrbitDelta(*p.OrbitalDays)
			assert.InDelta(t, want, n.Pivot.Rotation.Y, 1e-9, p.ID)
		} else {
			assert.Equal(t, before[p.ID], n.Pivot.Rotation, p.ID)
		}
	}

	// No nodes are created per frame.
	for _, c := range r.nodes {
		assert.Equal(t, r.nodes[0], c)
	}
}

func TestHandleScroll(t *testing.T) {
	ctx := newContext(t)
	l := New(ctx, &countingRenderer{}, nil)

	require.NoError(t, l.Handle(ScrollEvent{Offset: -1000}))
	assert.Equal(t, 0.5, ctx.ScrollProgress)
	assert.Equal(t, ctx.Control.PoseAt(-1000), ctx.Camera.Pose)

	require.NoError(t, l.Handle(ScrollEvent{Offset: -5000}))
	assert.Equal(t, 1.0, ctx.ScrollProgress)
	assert.Equal(t, ctx.Control.End, ctx.Camera.Pose)

	require.NoError(t, l.Handle(ScrollEvent{Offset: 0}))
	assert.Equal(t, ctx.Control.Start, ctx.Camera.Pose)
}

func TestHandleResize(t *testing.T) {
	ctx := newContext(t)
	l := New(ctx, &countingRenderer{}, nil)
	require.NoError(t, l.Handle(ScrollEvent{Offset: -700}))
	pose := ctx.Camera.Pose

	require.NoError(t, l.Handle(ResizeEvent{Width: 1280, Height: 720}))
	assert.InDelta(t, 1280.0/720.0, ctx.Camera.Aspect, 1e-12)
	assert.Equal(t, pose, ctx.Camera.Pose)

	require.NoError(t, l.Handle(ResizeEvent{Width: 600, Height: 800}))
	assert.InDelta(t, 0.75, ctx.Camera.Aspect, 1e-12)
	assert.Equal(t, pose, ctx.Camera.Pose)
}

type bogusEvent struct{ ScrollEvent }

func TestHandleUnknownEvent(t *testing.T) {
	ctx := newContext(t)
	l := New(ctx, &countingRenderer{}, nil)
	assert.Error(t, l.Handle(bogusEvent{}))
}

func TestSunPulse(t *testing.T) {
	p := &SunPulse{Base: 1, Amplitude: 0.25, Hz: 0.5}
	assert.InDelta(t, 1, p.Value(0), 1e-12)
	assert.InDelta(t, 1.25, p.Value(500*time.Millisecond), 1e-12)
	assert.InDelta(t, 0.75, p.Value(1500*time.Millisecond), 1e-12)

	for ms := 0; ms < 5000; ms += 37 {
		v := p.Value(time.Duration(ms) * time.Millisecond)
		assert.LessOrEqual(t, v, 1.25+1e-12)
		assert.GreaterOrEqual(t, v, 0.75-1e-12)
	}
}

func TestTickAppliesPulse(t *testing.T) {
	ctx := newContext(t)
	pulse := &SunPulse{Base: 1, Amplitude: 0.5, Hz: 1}
	l := New(ctx, &countingRenderer{}, pulse)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	l.SetClock(func() time.Time { return now })

	l.Tick()
	assert.InDelta(t, 1, ctx.Light.Intensity, 1e-12)

	now = start.Add(250 * time.Millisecond)
	l.Tick()
	assert.InDelta(t, 1.5, ctx.Light.Intensity, 1e-12)
	assert.InDelta(t, 1.5, ctx.Glow.Scale[0], 1e-12)
	assert.False(t, math.IsNaN(ctx.Glow.Scale[1]))
}
