package render

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/geometry"
)

const (
	skyboxScale = 1000
	// starShellRadius keeps procedural stars inside the default far clip plane.
	starShellRadius = 800
	starSeed        = 1
)

// equirectAspectMin/Max: width/height ratio for an equirectangular panorama (typically 2:1).
const equirectAspectMin = 1.8
const equirectAspectMax = 2.2

// starfield draws the background: an equirectangular star panorama when one is available,
// otherwise a fixed shell of point stars centred on the camera.
type starfield struct {
	path    string
	pending bool // path known, GPU load deferred until first Draw (after window/GL exists)
	loaded  bool
	tex     rl.Texture2D
	mesh    rl.Mesh
	mtl     rl.Material
	shader  rl.Shader
	camLoc  int32
	points  []rl.Vector3
	colors  []rl.Color
}

// newStarfield checks path and decides between the panorama and point stars.
// A missing or non-panoramic file selects point stars.
func newStarfield(path string, count int) *starfield {
	s := &starfield{}
	if _, err := os.Stat(path); err == nil {
		img := rl.LoadImage(path)
		if img != nil && img.Width > 0 && img.Height > 0 {
			aspect := float32(img.Width) / float32(img.Height)
			if aspect >= equirectAspectMin && aspect <= equirectAspectMax {
				s.path = path
				s.pending = true
			}
			rl.UnloadImage(img)
		}
	}
	if s.pending {
		return s
	}
	pts := geometry.Starfield(starSeed, count, starShellRadius)
	s.points = make([]rl.Vector3, len(pts))
	s.colors = make([]rl.Color, len(pts))
	for i, p := range pts {
		s.points[i] = rl.NewVector3(p[0], p[1], p[2])
		// Vary brightness deterministically so the field is not uniform.
		b := uint8(140 + (i*53)%116)
		s.colors[i] = rl.NewColor(b, b, b, 255)
	}
	return s
}

// ensureLoaded runs the first time we draw with a pending panorama; it loads GPU resources
// (texture, mesh, material, shader) after the window/OpenGL context exists.
func (s *starfield) ensureLoaded() {
	if !s.pending {
		return
	}
	s.pending = false
	s.tex = rl.LoadTexture(s.path)
	if !rl.IsTextureValid(s.tex) {
		return
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.tex)
		return
	}
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.mtl = rl.LoadMaterialDefault()
	s.mtl.Shader = shader
	rl.SetMaterialTexture(&s.mtl, rl.MapAlbedo, s.tex)
	s.camLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.shader = shader
	s.loaded = true
}

// Equirectangular skybox shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  fragWorldPos = (matModel * vec4(vertexPosition, 1.0)).xyz;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D texture0;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(texture0, vec2(u, v));
}
`
)

// Draw renders the background centred on the camera. Call first inside BeginMode3D.
func (s *starfield) Draw(cam rl.Camera3D) {
	s.ensureLoaded()
	pos := cam.Position
	if s.loaded {
		rl.DisableDepthMask()
		rl.DisableBackfaceCulling()
		scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
		trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
		if s.camLoc >= 0 {
			camPos := []float32{pos.X, pos.Y, pos.Z}
			rl.SetShaderValueV(s.shader, s.camLoc, camPos, rl.ShaderUniformVec3, 1)
		}
		rl.DrawMesh(s.mesh, s.mtl, rl.MatrixMultiply(scale, trans))
		rl.EnableBackfaceCulling()
		rl.EnableDepthMask()
		return
	}
	// Point stars follow the camera so they always sit at the same apparent depth.
	var p rl.Vector3
	for i, star := range s.points {
		p.X, p.Y, p.Z = star.X+pos.X, star.Y+pos.Y, star.Z+pos.Z
		rl.DrawPoint3D(p, s.colors[i])
	}
}
