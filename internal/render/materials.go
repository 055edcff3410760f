package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/solar"
)

// sphereRings and sphereSlices control the shared unit-sphere resolution.
const sphereRings = 32
const sphereSlices = 48

// loadLitShader returns a shader that samples the albedo texture and applies a point light
// plus ambient. Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// litFS: albedo texture * colDiffuse, lit by a point light at lightPos.
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPos - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term: the night side stays faintly visible.
var defaultAmbient = [4]float32{0.06, 0.06, 0.08, 1.0}

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(32.0)

// defaultSpecularStrength scales specular contribution (0–1). Planets are mostly matte.
const defaultSpecularStrength = float32(0.08)

// litLocs caches uniform locations so they are not looked up every draw.
type litLocs struct {
	viewPos, lightPos, ambient, lightColor          int32
	lightIntensity, specularPower, specularStrength int32
}

func lookupLitLocs(shader rl.Shader) litLocs {
	return litLocs{
		viewPos:          rl.GetShaderLocation(shader, "viewPos"),
		lightPos:         rl.GetShaderLocation(shader, "lightPos"),
		ambient:          rl.GetShaderLocation(shader, "ambient"),
		lightColor:       rl.GetShaderLocation(shader, "lightColor"),
		lightIntensity:   rl.GetShaderLocation(shader, "lightIntensity"),
		specularPower:    rl.GetShaderLocation(shader, "specularPower"),
		specularStrength: rl.GetShaderLocation(shader, "specularStrength"),
	}
}

// setLitUniforms sets viewPos, the point light, ambient and specular on the lit shader
// once per frame (cgo-safe: local arrays).
func setLitUniforms(shader rl.Shader, locs litLocs, viewPos rl.Vector3, light solar.Light) {
	if !rl.IsShaderValid(shader) {
		return
	}
	view := [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	pos := [3]float32{float32(light.Position[0]), float32(light.Position[1]), float32(light.Position[2])}
	col := [3]float32{float32(light.Color.R) / 255, float32(light.Color.G) / 255, float32(light.Color.B) / 255}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	if locs.viewPos >= 0 {
		rl.SetShaderValueV(shader, locs.viewPos, view[:], rl.ShaderUniformVec3, 1)
	}
	if locs.lightPos >= 0 {
		rl.SetShaderValueV(shader, locs.lightPos, pos[:], rl.ShaderUniformVec3, 1)
	}
	if locs.ambient >= 0 {
		rl.SetShaderValueV(shader, locs.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	if locs.lightColor >= 0 {
		rl.SetShaderValueV(shader, locs.lightColor, col[:], rl.ShaderUniformVec3, 1)
	}
	if locs.lightIntensity >= 0 {
		rl.SetShaderValue(shader, locs.lightIntensity, []float32{float32(light.Intensity)}, rl.ShaderUniformFloat)
	}
	if locs.specularPower >= 0 {
		rl.SetShaderValue(shader, locs.specularPower, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if locs.specularStrength >= 0 {
		rl.SetShaderValue(shader, locs.specularStrength, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
