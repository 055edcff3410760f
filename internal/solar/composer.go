package solar

import (
	"errors"
	"fmt"
	"math"
)

const secondsPerDay = 86400

// Default presentation multipliers: they compress days and years into motion visible
// within seconds. They are tuning values, not physical constants.
const (
	DefaultRotationMultiplier = 77
	DefaultOrbitMultiplier    = 25000
)

var (
	// ErrAlreadyTilted is returned when tilt and inclination are applied to a body twice.
	ErrAlreadyTilted = errors.New("tilt already applied")
	// ErrAlreadyAdvanced is returned when tilt is applied after the body has started moving.
	ErrAlreadyAdvanced = errors.New("tilt must be applied before the first advance")
)

// Rates holds the per-frame scaling for spin and orbital advance.
type Rates struct {
	RotationMultiplier float64
	OrbitMultiplier    float64
}

// DefaultRates returns the default multipliers.
func DefaultRates() Rates {
	return Rates{
		RotationMultiplier: DefaultRotationMultiplier,
		OrbitMultiplier:    DefaultOrbitMultiplier,
	}
}

// SpinDelta is the per-frame spin angle in radians for a day length in days.
// A negative day length spins the body retrograde.
func (r Rates) SpinDelta(dayDays float64) float64 {
	return 2 * math.Pi / (dayDays * secondsPerDay) * r.RotationMultiplier
}

// OrbitDelta is the per-frame orbital angle in radians for a year length in days.
func (r Rates) OrbitDelta(yearDays float64) float64 {
	return 2 * math.Pi / (yearDays * secondsPerDay) * r.OrbitMultiplier
}

// ApplyTiltAndInclination adds the axial tilt to the body and ring and the orbital inclination
// to the pivot and orbit path, all about the local X axis. It runs once per body, before any
// Advance; later calls return an error and leave the node unchanged.
func ApplyTiltAndInclination(n *BodyNode, tiltDeg, inclinationDeg float64) error {
	if n.tilted {
		return fmt.Errorf("%s: %w", n.ID, ErrAlreadyTilted)
	}
	if n.advanced {
		return fmt.Errorf("%s: %w", n.ID, ErrAlreadyAdvanced)
	}
	tilt := tiltDeg * math.Pi / 180
	incl := inclinationDeg * math.Pi / 180

	n.Body.Rotation.X += tilt
	if n.Ring != nil {
		n.Ring.Rotation.X += tilt
	}
	n.Pivot.Rotation.X += incl
	n.OrbitPath.Rotation.X += incl
	n.tilted = true
	return nil
}

// Advance moves a body by one frame: the body spins about its own Y axis and, when yearDays
// is non-nil, the pivot turns about Y to carry it along its orbit. Both angles only accumulate.
func Advance(n *BodyNode, dayDays float64, yearDays *float64, r Rates) {
	n.Body.Rotation.Y += r.SpinDelta(dayDays)
	if yearDays != nil {
		n.Pivot.Rotation.Y += r.OrbitDelta(*yearDays)
	}
	n.advanced = true
}
