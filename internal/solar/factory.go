package solar

import (
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"

	"solar-system/internal/bodies"
	"solar-system/internal/scenegraph"
)

// orbitPathColor is the tint of the orbit circles (dim, mostly transparent grey).
var orbitPathColor = scenegraph.Color{R: 160, G: 160, B: 170, A: 90}

// BodyNode is the scene representation of one body: a pivot carrying the body mesh (and ring),
// plus a separate orbit-path node parented to the scene root. Ring is nil for ringless bodies.
type BodyNode struct {
	ID        string
	Pivot     *scenegraph.Node
	Body      *scenegraph.Node
	Ring      *scenegraph.Node
	OrbitPath *scenegraph.Node
	// Params is the registry record the node was built from; zero for CreateBody.
	Params bodies.BodyParams

	tilted   bool
	advanced bool
}

// RingRadii are ring radii in world units.
type RingRadii struct {
	Inner, Outer float64
}

// Factory builds body hierarchies into a scene. Textures are resolved under AssetsDir/maps.
type Factory struct {
	Scene     *scenegraph.Scene
	AssetsDir string
}

// TexturePath returns the texture file for a body id (e.g. assets/maps/earth.jpg).
func (f *Factory) TexturePath(id string) string {
	return filepath.Join(f.AssetsDir, "maps", id+".jpg")
}

// RingTexturePath returns the ring texture file for a body id (e.g. assets/maps/saturnRing.jpg).
func (f *Factory) RingTexturePath(id string) string {
	return filepath.Join(f.AssetsDir, "maps", id+"Ring.jpg")
}

// CreateBody builds the pivot, body, optional ring and orbit path for one body and adds them
// to the scene. The body sits at (distance, 0, 0) in pivot space; the ring shares that offset
// but is a pivot child, so it orbits with the body without spinning with it.
// Texture files are not checked here; the renderer falls back to untextured drawing.
func (f *Factory) CreateBody(id string, radius, distance float64, ring *RingRadii) *BodyNode {
	pivot := scenegraph.NewNode(id + "/pivot")
	f.Scene.Add(pivot)

	body := scenegraph.NewMeshNode(id, &scenegraph.Mesh{
		Kind:     scenegraph.Sphere,
		Radius:   radius,
		Material: scenegraph.Material{Texture: f.TexturePath(id), Color: scenegraph.White},
	})
	body.Position = mgl64.Vec3{distance, 0, 0}
	pivot.Add(body)

	n := &BodyNode{ID: id, Pivot: pivot, Body: body}

	if ring != nil {
		r := scenegraph.NewMeshNode(id+"/ring", &scenegraph.Mesh{
			Kind:     scenegraph.Annulus,
			Inner:    ring.Inner,
			Outer:    ring.Outer,
			Material: scenegraph.Material{Texture: f.RingTexturePath(id), Color: scenegraph.White},
		})
		r.Position = mgl64.Vec3{distance, 0, 0}
		r.Rotation.X = math.Pi / 2
		pivot.Add(r)
		n.Ring = r
	}

	path := scenegraph.NewMeshNode(id+"/orbit", &scenegraph.Mesh{
		Kind:     scenegraph.OrbitPath,
		Radius:   distance,
		Material: scenegraph.Material{Color: orbitPathColor, Unlit: true},
	})
	path.Rotation.X = math.Pi / 2
	f.Scene.Add(path)
	n.OrbitPath = path

	return n
}

// Scale converts registry kilometres to world units. Radii and distances use separate
// factors so bodies stay visible at solar-system distances.
type Scale struct {
	RadiusPerKm   float64
	DistancePerKm float64
}

// CreateFromParams scales p and builds its hierarchy.
func (f *Factory) CreateFromParams(p bodies.BodyParams, s Scale) *BodyNode {
	var ring *RingRadii
	if p.Ring != nil {
		ring = &RingRadii{
			Inner: p.Ring.InnerKm * s.RadiusPerKm,
			Outer: p.Ring.OuterKm * s.RadiusPerKm,
		}
	}
	n := f.CreateBody(p.ID, p.RadiusKm*s.RadiusPerKm, p.DistKm*s.DistancePerKm, ring)
	n.Params = p
	return n
}
