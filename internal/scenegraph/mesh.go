package scenegraph

// MeshKind selects the primitive a renderer builds for a node.
type MeshKind int

const (
	// Sphere is a UV sphere of Radius.
	Sphere MeshKind = iota
	// Annulus is a flat ring between Inner and Outer in the local XY plane.
	Annulus
	// OrbitPath is a circle of Radius in the local XY plane, drawn as a line loop.
	OrbitPath
	// Sprite is a camera-facing quad of size Radius·2.
	Sprite
)

func (k MeshKind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Annulus:
		return "annulus"
	case OrbitPath:
		return "orbit-path"
	case Sprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// White is the untinted material color.
var White = Color{255, 255, 255, 255}

// Material describes how a mesh is shaded. Texture is a file path handed to the renderer;
// a missing or unreadable file falls back to Color without an error.
type Material struct {
	Texture string
	Color   Color
	Unlit   bool // emissive: ignores scene lighting (the sun, orbit paths, glow)
}

// Mesh is renderer-independent geometry plus its material.
// Radius is used by Sphere, OrbitPath and Sprite; Inner and Outer by Annulus.
type Mesh struct {
	Kind     MeshKind
	Radius   float64
	Inner    float64
	Outer    float64
	Material Material
}
