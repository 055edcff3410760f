package render

import (
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"solar-system/internal/debug"
	"solar-system/internal/geometry"
	"solar-system/internal/logger"
	"solar-system/internal/scenegraph"
	"solar-system/internal/solar"
)

const (
	ringSegments  = 96
	orbitSegments = 128
)

// ringMesh keeps the CPU vertex data alive (and pinned) for as long as the GPU mesh exists.
type ringMesh struct {
	mesh rl.Mesh
	data geometry.AnnulusData
}

// Renderer draws a SceneContext with raylib. Meshes, shaders and textures are created
// lazily on the first Render so GPU resources are allocated after the window/OpenGL context exists.
type Renderer struct {
	log       *logger.Logger
	debug     *debug.Debug
	stars     *starfield
	starCount int // point stars drawn when the panorama is missing

	ready    bool
	sphere   rl.Mesh
	litMtl   rl.Material
	unlitMtl rl.Material
	litLocs  litLocs
	white    rl.Texture2D

	rings    map[*scenegraph.Node]*ringMesh
	paths    map[*scenegraph.Node][]mgl64.Vec3
	textures map[string]rl.Texture2D
	missing  map[string]bool
	sprites  []*scenegraph.Node
	pinner   runtime.Pinner
}

// New returns a renderer that logs missing assets to log and draws dbg overlays.
func New(log *logger.Logger, dbg *debug.Debug, starCount int) *Renderer {
	return &Renderer{
		log:       log,
		debug:     dbg,
		starCount: starCount,
		rings:     make(map[*scenegraph.Node]*ringMesh),
		paths:     make(map[*scenegraph.Node][]mgl64.Vec3),
		textures:  make(map[string]rl.Texture2D),
		missing:   make(map[string]bool),
	}
}

// ensureReady creates the shared unit sphere and the lit/unlit materials on first use.
func (r *Renderer) ensureReady(ctx *solar.SceneContext) {
	if r.ready {
		return
	}
	r.ready = true
	r.sphere = rl.GenMeshSphere(1, sphereRings, sphereSlices)

	r.unlitMtl = rl.LoadMaterialDefault()
	if albedo := r.unlitMtl.GetMap(rl.MapAlbedo); albedo != nil {
		r.white = albedo.Texture
	}
	r.litMtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.litMtl.Shader = shader
		r.litLocs = lookupLitLocs(shader)
	} else {
		r.log.Log("render: lit shader failed to compile, drawing unlit")
	}
	r.stars = newStarfield(ctx.StarsTexture, r.starCount)
}

// texture returns the texture for path, loading it on first use. A missing or invalid file
// is logged once and yields the default white texture so the mesh draws untextured.
func (r *Renderer) texture(path string) rl.Texture2D {
	if path == "" || r.missing[path] {
		return r.white
	}
	if tex, ok := r.textures[path]; ok {
		return tex
	}
	if _, err := os.Stat(path); err != nil {
		r.missing[path] = true
		r.log.Logf("render: texture %s not found, drawing untextured", path)
		return r.white
	}
	tex := rl.LoadTexture(path)
	if !rl.IsTextureValid(tex) {
		r.missing[path] = true
		r.log.Logf("render: texture %s could not be loaded, drawing untextured", path)
		return r.white
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	r.textures[path] = tex
	return tex
}

// ring returns the GPU mesh for an annulus node, uploading it on first use.
func (r *Renderer) ring(n *scenegraph.Node) *ringMesh {
	if rm, ok := r.rings[n]; ok {
		return rm
	}
	data := geometry.Annulus(float32(n.Mesh.Inner), float32(n.Mesh.Outer), ringSegments)
	rm := &ringMesh{data: data}
	rm.mesh = rl.Mesh{
		VertexCount:   int32(data.VertexCount()),
		TriangleCount: int32(data.TriangleCount()),
	}
	r.pinner.Pin(&rm.data.Vertices[0])
	r.pinner.Pin(&rm.data.Normals[0])
	r.pinner.Pin(&rm.data.Texcoords[0])
	r.pinner.Pin(&rm.data.Indices[0])
	rm.mesh.Vertices = &rm.data.Vertices[0]
	rm.mesh.Normals = &rm.data.Normals[0]
	rm.mesh.Texcoords = &rm.data.Texcoords[0]
	rm.mesh.Indices = &rm.data.Indices[0]
	rl.UploadMesh(&rm.mesh, false)
	r.rings[n] = rm
	return rm
}

// path returns the local-space points of an orbit circle, generated on first use.
func (r *Renderer) path(n *scenegraph.Node) []mgl64.Vec3 {
	if pts, ok := r.paths[n]; ok {
		return pts
	}
	circle := geometry.Circle(float32(n.Mesh.Radius), orbitSegments)
	pts := make([]mgl64.Vec3, len(circle))
	for i, p := range circle {
		pts[i] = mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
	}
	r.paths[n] = pts
	return pts
}

// Render draws the scene from the context camera: starfield, bodies and rings, orbit paths,
// then additive sprites, and finally the 2D debug overlay. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Render(ctx *solar.SceneContext) {
	r.ensureReady(ctx)
	cam := toCamera(ctx)

	rl.BeginMode3D(cam)
	r.stars.Draw(cam)
	setLitUniforms(r.litMtl.Shader, r.litLocs, cam.Position, ctx.Light)

	r.sprites = r.sprites[:0]
	ctx.Scene.Root.Walk(func(n *scenegraph.Node, world mgl64.Mat4) {
		if n.Mesh == nil {
			return
		}
		switch n.Mesh.Kind {
		case scenegraph.Sphere:
			m := world.Mul4(mgl64.Scale3D(n.Mesh.Radius, n.Mesh.Radius, n.Mesh.Radius))
			r.drawMesh(r.sphere, n.Mesh.Material, m)
		case scenegraph.Annulus:
			rl.DisableBackfaceCulling()
			r.drawMesh(r.ring(n).mesh, n.Mesh.Material, world)
			rl.EnableBackfaceCulling()
		case scenegraph.OrbitPath:
			if n.Mesh.Radius > 0 {
				drawLoop(r.path(n), world, toColor(n.Mesh.Material.Color))
			}
		case scenegraph.Sprite:
			r.sprites = append(r.sprites, n)
		}
	})

	rl.BeginBlendMode(rl.BlendAdditive)
	for _, n := range r.sprites {
		r.drawSprite(cam, n)
	}
	rl.EndBlendMode()
	rl.EndMode3D()

	if r.debug != nil {
		r.debug.Draw(ctx.ScrollProgress)
	}
}

func (r *Renderer) drawMesh(mesh rl.Mesh, m scenegraph.Material, world mgl64.Mat4) {
	mtl := r.litMtl
	if m.Unlit {
		mtl = r.unlitMtl
	}
	rl.SetMaterialTexture(&mtl, rl.MapAlbedo, r.texture(m.Texture))
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(m.Color)
	}
	rl.DrawMesh(mesh, mtl, toMatrix(world))
}

func (r *Renderer) drawSprite(cam rl.Camera3D, n *scenegraph.Node) {
	tex := r.texture(n.Mesh.Material.Texture)
	if tex.ID == r.white.ID {
		// A glow without its texture would be a flat square.
		return
	}
	world := n.World()
	pos := mgl64.TransformCoordinate(mgl64.Vec3{}, world)
	size := float32(n.Mesh.Radius * 2 * world.Col(0).Vec3().Len())
	rl.DrawBillboard(cam, tex, toVector(pos), size, toColor(n.Mesh.Material.Color))
}

// drawLoop draws a closed polyline of local points transformed by world.
func drawLoop(pts []mgl64.Vec3, world mgl64.Mat4, c rl.Color) {
	if len(pts) < 2 {
		return
	}
	first := toVector(mgl64.TransformCoordinate(pts[0], world))
	prev := first
	for _, p := range pts[1:] {
		cur := toVector(mgl64.TransformCoordinate(p, world))
		rl.DrawLine3D(prev, cur, c)
		prev = cur
	}
	rl.DrawLine3D(prev, first, c)
}

func toCamera(ctx *solar.SceneContext) rl.Camera3D {
	c := ctx.Camera
	return rl.Camera3D{
		Position:   toVector(c.Position),
		Target:     toVector(c.Target()),
		Up:         toVector(c.Up()),
		Fovy:       float32(c.FovyDeg),
		Projection: rl.CameraPerspective,
	}
}

func toVector(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func toColor(c scenegraph.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toMatrix converts a column-major mathgl matrix to raylib's layout; both index element i
// as column i/4, row i%4, so fields map by number.
func toMatrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}
