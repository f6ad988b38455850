package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-stage/internal/scene"
)

// minExtent keeps a box from collapsing to zero thickness, which would zero its normals.
const minExtent = 1e-4

// Registry owns the GPU resources for drawing cubes: one unit cube mesh and one material
// with a Lambert shader (ambient + one directional light). Resources are created on first
// use so that they are allocated after the window/OpenGL context exists.
type Registry struct {
	mesh   rl.Mesh
	mtl    rl.Material
	loaded bool

	ambient    [3]float32 // ambient colour * intensity
	lightColor [3]float32 // directional colour * intensity
	lightDir   [3]float32 // direction to the light, normalized
}

// NewRegistry returns a registry with nothing loaded.
func NewRegistry() *Registry {
	return &Registry{lightDir: [3]float32{0, 0, 1}}
}

// ensureCube creates the cube mesh and lit material if not yet loaded.
func (r *Registry) ensureCube() {
	if r.loaded {
		return
	}
	r.mesh = rl.GenMeshCube(1, 1, 1)
	r.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.loaded = true
}

// SetLights sets the lighting for this frame. The directional light shines from its
// position toward the origin. Call once per frame before DrawCube.
func (r *Registry) SetLights(amb *scene.AmbientLight, dir *scene.DirectionalLight) {
	r.ambient = [3]float32{}
	r.lightColor = [3]float32{}
	if amb != nil {
		r.ambient = scaled(amb.Color, amb.Intensity)
	}
	if dir != nil {
		r.lightColor = scaled(dir.Color, dir.Intensity)
		if d := dir.Position.Normalize(); d != (scene.Vec3{}) {
			r.lightDir = d.Array()
		}
	}
}

func scaled(c color.RGBA, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 ambient;
uniform vec3 lightColor;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 lit = ambient + lightColor * NdotL;
  finalColor = vec4(colDiffuse.rgb * lit, colDiffuse.a);
}
`
)

// setUniforms uploads the frame's lighting (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	amb := r.ambient
	lightColor := r.lightColor
	lightDir := r.lightDir
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
}

// BeginCubes uploads the lighting once and switches to the cube's blend mode.
// Must be called between BeginMode3D and EndMode3D, followed by DrawCube calls and EndCubes.
func (r *Registry) BeginCubes(blending scene.Blending) {
	r.ensureCube()
	r.setUniforms(r.mtl.Shader)
	if blending == scene.AdditiveBlending {
		rl.BeginBlendMode(rl.BlendAdditive)
	}
}

// EndCubes restores the default blend mode.
func (r *Registry) EndCubes() {
	rl.EndBlendMode()
}

// DrawCube draws one cube: the unit mesh scaled to Size, moved to Position, tinted with Color.
func (r *Registry) DrawCube(c *scene.Cube) {
	if !r.loaded {
		return
	}
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	}
	scaleM := rl.MatrixScale(max(c.Size.X, minExtent), max(c.Size.Y, minExtent), max(c.Size.Z, minExtent))
	transM := rl.MatrixTranslate(c.Position.X, c.Position.Y, c.Position.Z)
	rl.DrawMesh(r.mesh, r.mtl, rl.MatrixMultiply(scaleM, transM))
	if c.Wireframe {
		rl.DrawCubeWiresV(rl.NewVector3(c.Position.X, c.Position.Y, c.Position.Z), rl.NewVector3(c.Size.X, c.Size.Y, c.Size.Z), rl.White)
	}
}

// Unload frees the mesh and material. Call before the window closes.
func (r *Registry) Unload() {
	if !r.loaded {
		return
	}
	rl.UnloadMesh(&r.mesh)
	rl.UnloadMaterial(r.mtl)
	r.loaded = false
}
