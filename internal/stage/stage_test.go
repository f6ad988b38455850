package stage

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-stage/internal/panel"
	"cube-stage/internal/scene"
)

type size struct{ w, h int }

type fakeRenderer struct {
	sizes   []size
	clear   color.RGBA
	loop    func()
	renders int
	lastCam scene.Camera
}

func (r *fakeRenderer) SetSize(w, h int)           { r.sizes = append(r.sizes, size{w, h}) }
func (r *fakeRenderer) SetClearColor(c color.RGBA) { r.clear = c }
func (r *fakeRenderer) SetAnimationLoop(fn func()) { r.loop = fn }
func (r *fakeRenderer) Render(_ *scene.Graph, cam *scene.Camera) {
	r.renders++
	r.lastCam = *cam
}

// tick is one display refresh: run the frame callback if any.
func (r *fakeRenderer) tick() {
	if r.loop != nil {
		r.loop()
	}
}

type fakeContainer struct {
	w, h    int
	mounted Renderer
	events  []func()
}

func (c *fakeContainer) Size() (int, int)   { return c.w, c.h }
func (c *fakeContainer) Mount(r Renderer)   { c.mounted = r }
func (c *fakeContainer) OnEvents(fn func()) { c.events = append(c.events, fn) }

// pump is one event-loop iteration.
func (c *fakeContainer) pump() {
	for _, fn := range c.events {
		fn()
	}
}

func newStage(t *testing.T) (*Stage, *fakeContainer, *fakeRenderer, *panel.Panel) {
	t.Helper()
	c := &fakeContainer{w: 1280, h: 720}
	r := &fakeRenderer{}
	p := panel.New("debug")
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(7))
	return New(c, r, p, opts), c, r, p
}

func TestNewWiresScene(t *testing.T) {
	s, c, r, p := newStage(t)

	assert.Same(t, r, c.mounted)
	assert.Equal(t, color.RGBA{A: 255}, r.clear)
	assert.Equal(t, scene.NewVec3(0, 0, 5), s.Camera().Position)
	assert.Equal(t, scene.Vec3{}, s.Camera().Target)
	assert.InDelta(t, 1280.0/720.0, s.Camera().Aspect, 1e-6)
	assert.Equal(t, float32(75), s.Camera().Fov)

	require.Equal(t, 2, s.Graph().Len())
	assert.Same(t, s.Directional(), s.Graph().Entities()[0])
	assert.Same(t, s.Ambient(), s.Graph().Entities()[1])
	assert.Equal(t, float32(0.1), s.Ambient().Intensity)
	assert.Equal(t, float32(0.5), s.Directional().Intensity)

	var labels []string
	for _, ctl := range p.Controls() {
		labels = append(labels, ctl.Label)
	}
	assert.Equal(t, []string{CameraX, CameraY, CameraZ, DirectionalIntensity, AmbientIntensity}, labels)
	require.Len(t, p.Actions(), 1)
	assert.Equal(t, AddCubeAction, p.Actions()[0].Label)

	assert.Nil(t, r.loop, "nothing drawn before Start")
	assert.Same(t, s.Camera(), s.Orbit().Camera)
}

func TestBindingRanges(t *testing.T) {
	_, _, _, p := newStage(t)
	for _, ctl := range p.Controls() {
		assert.Equal(t, float32(0.01), ctl.Step, ctl.Label)
		switch ctl.Label {
		case CameraX, CameraY, CameraZ:
			assert.Equal(t, float32(-10), ctl.Min, ctl.Label)
			assert.Equal(t, float32(10), ctl.Max, ctl.Label)
		default:
			assert.Equal(t, float32(0), ctl.Min, ctl.Label)
			assert.Equal(t, float32(3), ctl.Max, ctl.Label)
		}
	}
}

func TestStartStop(t *testing.T) {
	s, _, r, _ := newStage(t)

	s.Start()
	assert.True(t, s.Running())
	r.tick()
	r.tick()
	assert.Equal(t, 2, r.renders)

	s.Stop()
	assert.False(t, s.Running())
	for i := 0; i < 5; i++ {
		r.tick()
	}
	assert.Equal(t, 2, r.renders)
}

func TestStartTwiceReplacesCallback(t *testing.T) {
	s, _, r, _ := newStage(t)
	s.Start()
	s.Start()
	r.tick()
	assert.Equal(t, 1, r.renders)
}

func TestLightFollowsCameraFromPanel(t *testing.T) {
	s, _, r, p := newStage(t)
	s.Start()

	for label, v := range map[string]float32{CameraX: 1.25, CameraY: -3.5, CameraZ: 7} {
		ctl, ok := p.Find(label)
		require.True(t, ok)
		ctl.Set(v)
	}
	assert.Equal(t, scene.NewVec3(1.25, -3.5, 7), s.Camera().Position)
	assert.NotEqual(t, s.Camera().Position, s.Directional().Position)

	r.tick()
	assert.Equal(t, s.Camera().Position, s.Directional().Position)
	assert.Equal(t, s.Camera().Position, r.lastCam.Position)
}

func TestLightFollowsOrbit(t *testing.T) {
	s, _, r, _ := newStage(t)
	s.Start()
	s.Orbit().Rotate(math.Pi/4, 0.2)
	r.tick()
	assert.Equal(t, s.Camera().Position, s.Directional().Position)
}

func TestIntensityBindings(t *testing.T) {
	s, _, _, p := newStage(t)

	dir, _ := p.Find(DirectionalIntensity)
	amb, _ := p.Find(AmbientIntensity)
	dir.Set(2.5)
	amb.Set(9)

	assert.InDelta(t, 2.5, s.Directional().Intensity, 1e-6)
	assert.Equal(t, float32(3), s.Ambient().Intensity)
	assert.Equal(t, Settings{
		CameraPosition: scene.NewVec3(0, 0, 5),
		Ambient:        3,
		Directional:    2.5,
	}, s.Snapshot())
}

func TestResizeOnce(t *testing.T) {
	s, c, r, _ := newStage(t)
	c.pump()
	require.Equal(t, []size{{1280, 720}}, r.sizes, "initial notification")

	r.sizes = nil
	c.w, c.h = 800, 600
	c.pump()
	c.pump()
	assert.Equal(t, []size{{800, 600}}, r.sizes)
	assert.InDelta(t, 800.0/600.0, s.Camera().Aspect, 1e-6)
}

func TestResizeWhileStopped(t *testing.T) {
	s, c, r, _ := newStage(t)
	s.Start()
	s.Stop()
	c.w, c.h = 640, 480
	c.pump()
	assert.Equal(t, []size{{640, 480}}, r.sizes)
}

func TestAddCubeHundred(t *testing.T) {
	s, _, _, _ := newStage(t)
	before := append([]scene.Entity(nil), s.Graph().Entities()...)

	for i := 0; i < 100; i++ {
		s.AddCube()
	}
	require.Equal(t, 102, s.Graph().Len())
	for i, e := range before {
		assert.Same(t, e, s.Graph().Entities()[i])
	}

	cubes := s.Graph().Cubes()
	require.Len(t, cubes, 100)
	for _, cube := range cubes {
		assert.Less(t, cube.Position.Length(), float32(2.5))
		for _, d := range cube.Size.Array() {
			assert.GreaterOrEqual(t, d, float32(0))
			assert.Less(t, d, float32(1))
		}
		assert.Equal(t, scene.AdditiveBlending, cube.Blending)
		assert.False(t, cube.Wireframe)
		assert.Equal(t, uint8(255), cube.Color.A)
	}
}

func TestAddCubeAction(t *testing.T) {
	s, _, _, p := newStage(t)
	require.NoError(t, p.Trigger(AddCubeAction))
	assert.Equal(t, 3, s.Graph().Len())
}

func TestRandomColorRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var distinct = map[color.RGBA]bool{}
	for i := 0; i < 50; i++ {
		distinct[randomColor(rng)] = true
	}
	assert.Greater(t, len(distinct), 45)
}

func TestZeroOptionsFallBack(t *testing.T) {
	c := &fakeContainer{w: 100, h: 0}
	s := New(c, &fakeRenderer{}, nil, Options{})
	assert.Equal(t, float32(75), s.Camera().Fov)
	assert.Equal(t, float32(1), s.Camera().Aspect)
	assert.NotNil(t, s.Panel())
	s.AddCube()
	assert.Equal(t, 3, s.Graph().Len())
}
