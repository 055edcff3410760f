package solar

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"

	"solar-system/internal/bodies"
	"solar-system/internal/camera"
	"solar-system/internal/scenegraph"
)

// Light is the point light at the sun. Intensity is a multiplier on the shader's diffuse term.
type Light struct {
	Position  mgl64.Vec3
	Color     scenegraph.Color
	Intensity float64
}

// Options configures scene construction.
type Options struct {
	AssetsDir string
	Scale     Scale
	Rates     Rates
	Camera    camera.Controller
	FovyDeg   float64
	// GlowRadius is the half-size of the sun glow sprite in world units; 0 disables the glow.
	GlowRadius float64
	LightPower float64
}

// SceneContext owns all mutable scene state: the graph, the camera and the light.
// It is built once at startup and mutated only by the frame loop and the event handlers,
// which run one at a time on the main thread.
type SceneContext struct {
	Scene    *scenegraph.Scene
	Registry *bodies.Registry
	Camera   *camera.Camera
	Control  *camera.Controller
	Light    Light
	Rates    Rates
	// Glow is the sun glow sprite, or nil when disabled.
	Glow *scenegraph.Node
	// StarsTexture is the optional equirectangular starfield image.
	StarsTexture string
	// ScrollProgress is the last camera progress in [0,1], for overlays.
	ScrollProgress float64

	nodes map[string]*BodyNode
}

// Build creates every body in reg (in registry order), applies tilt and inclination once per body,
// and positions the camera at the start pose.
func Build(reg *bodies.Registry, opts Options) (*SceneContext, error) {
	scene := scenegraph.NewScene()
	f := &Factory{Scene: scene, AssetsDir: opts.AssetsDir}

	ctx := &SceneContext{
		Scene:        scene,
		Registry:     reg,
		Control:      &opts.Camera,
		Rates:        opts.Rates,
		StarsTexture: filepath.Join(opts.AssetsDir, "maps", "stars.jpg"),
		Light: Light{
			Color:     scenegraph.White,
			Intensity: opts.LightPower,
		},
		nodes: make(map[string]*BodyNode, reg.Len()),
	}

	for _, p := range reg.All() {
		n := f.CreateFromParams(p, opts.Scale)
		if err := ApplyTiltAndInclination(n, p.AxialTiltDeg, p.InclinationDeg); err != nil {
			return nil, fmt.Errorf("solar: %w", err)
		}
		if !p.Orbits() {
			n.Body.Mesh.Material.Unlit = true
		}
		ctx.nodes[p.ID] = n
	}

	if opts.GlowRadius > 0 {
		glow := scenegraph.NewMeshNode("glow", &scenegraph.Mesh{
			Kind:   scenegraph.Sprite,
			Radius: opts.GlowRadius,
			Material: scenegraph.Material{
				Texture: filepath.Join(opts.AssetsDir, "maps", "sunGlow.png"),
				Color:   scenegraph.Color{R: 255, G: 200, B: 120, A: 255},
				Unlit:   true,
			},
		})
		scene.Add(glow)
		ctx.Glow = glow
	}

	ctx.Camera = camera.New(opts.Camera.Start, opts.FovyDeg)
	ctx.ScrollProgress = ctx.Control.OnScroll(ctx.Camera, 0)
	return ctx, nil
}

// Node returns the body hierarchy for id.
func (c *SceneContext) Node(id string) (*BodyNode, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

// TexturePaths returns every texture file the scene references, in scene order without
// duplicates, followed by the starfield panorama.
func TexturePaths(c *SceneContext) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	c.Scene.Root.Walk(func(n *scenegraph.Node, _ mgl64.Mat4) {
		if n.Mesh != nil {
			add(n.Mesh.Material.Texture)
		}
	})
	add(c.StarsTexture)
	return out
}
