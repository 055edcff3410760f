package bodies

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed bodies.yaml
var defaultBodies []byte

var (
	// ErrInvalidBody is wrapped by every validation failure so callers can match it with errors.Is.
	ErrInvalidBody = errors.New("invalid body")
	// ErrEmptyRegistry is returned when a registry file defines no bodies.
	ErrEmptyRegistry = errors.New("registry has no bodies")
)

// Registry is the ordered, read-only set of bodies in the scene.
// The id index is built once by Parse and never resized afterward.
type Registry struct {
	bodies []BodyParams
	index  map[string]int
}

// Default returns the built-in registry (sun plus the eight planets).
func Default() (*Registry, error) {
	return Parse(defaultBodies)
}

// Load reads a registry from a YAML file. An empty path returns Default().
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bodies: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes and validates YAML registry data. The first invalid record fails the whole load,
// so a NaN or division by zero can never reach a transform. Unknown keys are rejected: a misspelled
// orbital_days would otherwise turn a planet into a body that never orbits.
func Parse(data []byte) (*Registry, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("bodies: %w", err)
	}
	if len(f.Bodies) == 0 {
		return nil, fmt.Errorf("bodies: %w", ErrEmptyRegistry)
	}
	list := make([]BodyParams, 0, len(f.Bodies))
	for i, rec := range f.Bodies {
		p, err := rec.params()
		if err != nil {
			return nil, fmt.Errorf("bodies: record %d (%q): %w", i, rec.ID, err)
		}
		list = append(list, p)
	}
	return New(list)
}

// New builds a registry from already decoded parameters, validating each one.
func New(list []BodyParams) (*Registry, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("bodies: %w", ErrEmptyRegistry)
	}
	r := &Registry{
		bodies: make([]BodyParams, len(list)),
		index:  make(map[string]int, len(list)),
	}
	for i, p := range list {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("bodies: record %d (%q): %w", i, p.ID, err)
		}
		if _, dup := r.index[p.ID]; dup {
			return nil, fmt.Errorf("bodies: record %d: %w: duplicate id %q", i, ErrInvalidBody, p.ID)
		}
		r.bodies[i] = p
		r.index[p.ID] = i
	}
	return r, nil
}

// All returns the bodies in registry order. The slice must not be modified.
func (r *Registry) All() []BodyParams {
	return r.bodies
}

// Len returns the number of bodies.
func (r *Registry) Len() int {
	return len(r.bodies)
}

// Lookup returns the parameters for id.
func (r *Registry) Lookup(id string) (BodyParams, bool) {
	i, ok := r.index[id]
	if !ok {
		return BodyParams{}, false
	}
	return r.bodies[i], true
}

func (rec record) params() (BodyParams, error) {
	p := BodyParams{
		ID:             rec.ID,
		RadiusKm:       rec.RadiusKm,
		DistKm:         rec.DistKm,
		RotationDays:   rec.RotationDays,
		OrbitalDays:    rec.OrbitalDays,
		AxialTiltDeg:   rec.AxialTiltDeg,
		InclinationDeg: rec.InclinationDeg,
	}
	switch {
	case rec.RingInnerKm == nil && rec.RingOuterKm == nil:
	case rec.RingInnerKm == nil || rec.RingOuterKm == nil:
		return p, fmt.Errorf("%w: ring_inner_km and ring_outer_km must be given together", ErrInvalidBody)
	default:
		p.Ring = &RingParams{InnerKm: *rec.RingInnerKm, OuterKm: *rec.RingOuterKm}
	}
	return p, nil
}

// Validate rejects parameters that would produce NaN or infinite rotation deltas
// or degenerate geometry.
func Validate(p BodyParams) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidBody)
	}
	if !finite(p.RadiusKm) || p.RadiusKm <= 0 {
		return fmt.Errorf("%w: radius_km must be positive, got %v", ErrInvalidBody, p.RadiusKm)
	}
	if !finite(p.DistKm) || p.DistKm < 0 {
		return fmt.Errorf("%w: dist_km must be non-negative, got %v", ErrInvalidBody, p.DistKm)
	}
	if !finite(p.RotationDays) || p.RotationDays == 0 {
		return fmt.Errorf("%w: rotation_days must be non-zero, got %v", ErrInvalidBody, p.RotationDays)
	}
	if p.OrbitalDays != nil && (!finite(*p.OrbitalDays) || *p.OrbitalDays <= 0) {
		return fmt.Errorf("%w: orbital_days must be positive, got %v", ErrInvalidBody, *p.OrbitalDays)
	}
	if !finite(p.AxialTiltDeg) || !finite(p.InclinationDeg) {
		return fmt.Errorf("%w: tilt and inclination must be finite", ErrInvalidBody)
	}
	if r := p.Ring; r != nil {
		if !finite(r.InnerKm) || !finite(r.OuterKm) || r.InnerKm <= 0 || r.InnerKm >= r.OuterKm {
			return fmt.Errorf("%w: ring radii must satisfy 0 < inner < outer, got %v..%v", ErrInvalidBody, r.InnerKm, r.OuterKm)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
