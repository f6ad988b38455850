package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-stage/internal/primitives"
	"cube-stage/internal/scene"
	"cube-stage/internal/stage"
)

// Renderer draws the scene into an off-screen render texture and presents it each frame.
// Because presenting reuses the texture, removing the animation loop freezes the output
// on the last drawn frame. It implements stage.Renderer.
type Renderer struct {
	prims  *primitives.Registry
	clear  color.RGBA
	loop   func()
	target rl.RenderTexture2D
	loaded bool
	width  int
	height int
	dirty  bool
}

var _ stage.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer that draws cubes with prims.
func NewRenderer(prims *primitives.Registry) *Renderer {
	return &Renderer{prims: prims, clear: color.RGBA{A: 255}}
}

// SetSize records the output size. The render texture is recreated lazily on the next
// Render or Present, after the GL context exists.
func (r *Renderer) SetSize(width, height int) {
	if width == r.width && height == r.height && r.loaded {
		return
	}
	r.width, r.height = width, height
	r.dirty = true
}

// SetClearColor sets the background colour of the render texture.
func (r *Renderer) SetClearColor(c color.RGBA) {
	r.clear = c
}

// SetAnimationLoop installs fn to run once per frame from Tick; nil removes it.
func (r *Renderer) SetAnimationLoop(fn func()) {
	r.loop = fn
}

// Tick runs the animation loop callback, if any. Call once per frame before BeginDrawing.
func (r *Renderer) Tick() {
	if r.loop != nil {
		r.loop()
	}
}

func (r *Renderer) ensureTarget() bool {
	if r.dirty {
		if r.loaded {
			rl.UnloadRenderTexture(r.target)
			r.loaded = false
		}
		if r.width > 0 && r.height > 0 {
			r.target = rl.LoadRenderTexture(int32(r.width), int32(r.height))
			r.loaded = rl.IsRenderTextureValid(r.target)
		}
		r.dirty = false
	}
	return r.loaded
}

func toRaylib(cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(cam.Position.X, cam.Position.Y, cam.Position.Z),
		Target:     rl.NewVector3(cam.Target.X, cam.Target.Y, cam.Target.Z),
		Up:         rl.NewVector3(cam.Up.X, cam.Up.Y, cam.Up.Z),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	}
}

// Render draws g through cam into the render texture.
func (r *Renderer) Render(g *scene.Graph, cam *scene.Camera) {
	if !r.ensureTarget() {
		return
	}
	amb, dir := g.Lights()
	r.prims.SetLights(amb, dir)

	rl.BeginTextureMode(r.target)
	rl.ClearBackground(rl.NewColor(r.clear.R, r.clear.G, r.clear.B, r.clear.A))
	rl.BeginMode3D(toRaylib(cam))
	for _, blending := range []scene.Blending{scene.NormalBlending, scene.AdditiveBlending} {
		r.drawCubes(g, blending)
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}

func (r *Renderer) drawCubes(g *scene.Graph, blending scene.Blending) {
	begun := false
	for _, e := range g.Entities() {
		c, ok := e.(*scene.Cube)
		if !ok || c.Blending != blending {
			continue
		}
		if !begun {
			r.prims.BeginCubes(blending)
			begun = true
		}
		r.prims.DrawCube(c)
	}
	if begun {
		r.prims.EndCubes()
	}
}

// Present draws the last rendered frame to the screen. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Present() {
	if !r.ensureTarget() {
		return
	}
	w := float32(r.target.Texture.Width)
	h := float32(r.target.Texture.Height)
	// Render textures are stored bottom-up; a negative source height flips them.
	rl.DrawTextureRec(r.target.Texture, rl.NewRectangle(0, 0, w, -h), rl.NewVector2(0, 0), rl.White)
}

// Unload frees the render texture and the primitive resources.
func (r *Renderer) Unload() {
	if r.loaded {
		rl.UnloadRenderTexture(r.target)
		r.loaded = false
	}
	r.prims.Unload()
}
