package bodies

// BodyParams holds the static parameters of one celestial body. Values are
// display-scaled kilometres and Earth days; the scene converts them to world units.
// A nil OrbitalDays means the body does not orbit (the sun). Ring is nil for ringless bodies.
type BodyParams struct {
	ID             string
	RadiusKm       float64
	DistKm         float64
	RotationDays   float64 // negative = retrograde spin
	OrbitalDays    *float64
	AxialTiltDeg   float64
	InclinationDeg float64
	Ring           *RingParams
}

// RingParams holds the inner and outer ring radii in kilometres.
type RingParams struct {
	InnerKm float64
	OuterKm float64
}

// Orbits reports whether the body revolves around the scene origin.
func (p BodyParams) Orbits() bool {
	return p.OrbitalDays != nil
}

// Days returns a pointer to d, for building OrbitalDays literals.
func Days(d float64) *float64 {
	return &d
}

// record is the YAML definition for one body (an entry under "bodies:" in bodies.yaml).
// Ring radii are optional and must be given together.
type record struct {
	ID             string   `yaml:"id"`
	RadiusKm       float64  `yaml:"radius_km"`
	DistKm         float64  `yaml:"dist_km"`
	RotationDays   float64  `yaml:"rotation_days"`
	OrbitalDays    *float64 `yaml:"orbital_days,omitempty"`
	AxialTiltDeg   float64  `yaml:"axial_tilt_deg"`
	InclinationDeg float64  `yaml:"inclination_deg"`
	RingInnerKm    *float64 `yaml:"ring_inner_km,omitempty"`
	RingOuterKm    *float64 `yaml:"ring_outer_km,omitempty"`
}

type file struct {
	Bodies []record `yaml:"bodies"`
}
