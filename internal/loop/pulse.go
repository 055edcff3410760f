package loop

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"solar-system/internal/solar"
)

// SunPulse makes the sun glow breathe: the glow sprite scale and the light intensity both
// follow Base + Amplitude·sin(2π·Hz·t) of wall-clock time. It is purely cosmetic.
type SunPulse struct {
	Base      float64
	Amplitude float64
	Hz        float64
}

// Value returns the pulse factor after elapsed time.
func (p *SunPulse) Value(elapsed time.Duration) float64 {
	return p.Base + p.Amplitude*math.Sin(2*math.Pi*p.Hz*elapsed.Seconds())
}

// Apply writes the pulse to the glow sprite scale and the light intensity.
func (p *SunPulse) Apply(ctx *solar.SceneContext, elapsed time.Duration) {
	v := p.Value(elapsed)
	if ctx.Glow != nil {
		ctx.Glow.Scale = mgl64.Vec3{v, v, v}
	}
	ctx.Light.Intensity = v
}
