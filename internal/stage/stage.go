package stage

import (
	"image/color"
	"math/rand"
	"time"

	"cube-stage/internal/logger"
	"cube-stage/internal/orbit"
	"cube-stage/internal/panel"
	"cube-stage/internal/resize"
	"cube-stage/internal/sampler"
	"cube-stage/internal/scene"
)

// Renderer draws a graph through a camera onto an output surface and drives the
// per-frame callback at display refresh.
type Renderer interface {
	SetSize(width, height int)
	SetClearColor(c color.RGBA)
	// SetAnimationLoop installs fn to run once per displayed frame; nil removes it.
	SetAnimationLoop(fn func())
	Render(g *scene.Graph, cam *scene.Camera)
}

// Container hosts the renderer's output surface (the window on desktop).
// OnEvents registers fn to run on every event-loop iteration, whether or not a frame
// callback is installed; the stage polls its resize observer there.
type Container interface {
	resize.Target
	Mount(r Renderer)
	OnEvents(fn func())
}

// Options configures a Stage. Zero Fov, Near, Far and SpawnRadius fall back to DefaultOptions;
// a nil Rand is seeded from the clock and a nil Log keeps lines in memory only.
type Options struct {
	CameraPosition scene.Vec3
	Fov            float32
	Near           float32
	Far            float32
	Ambient        float32
	Directional    float32
	ClearColor     color.RGBA
	SpawnRadius    float32
	Rand           *rand.Rand
	Log            *logger.Logger
}

// DefaultOptions returns the stock scene: camera at (0,0,5), 75° fov, black background,
// ambient 0.1, directional 0.5, cubes within radius 2.5.
func DefaultOptions() Options {
	return Options{
		CameraPosition: scene.NewVec3(0, 0, 5),
		Fov:            75,
		Near:           0.1,
		Far:            1000,
		Ambient:        0.1,
		Directional:    0.5,
		ClearColor:     color.RGBA{A: 255},
		SpawnRadius:    2.5,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Fov <= 0 {
		o.Fov = def.Fov
	}
	if o.Near <= 0 {
		o.Near = def.Near
	}
	if o.Far <= 0 {
		o.Far = def.Far
	}
	if o.SpawnRadius <= 0 {
		o.SpawnRadius = def.SpawnRadius
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Log == nil {
		o.Log = logger.New("")
	}
	return o
}

// Settings is the tunable state of a running stage.
type Settings struct {
	CameraPosition scene.Vec3
	Ambient        float32
	Directional    float32
}

// Stage owns the scene graph, camera, lights, orbit control and debug-panel bindings
// for one container. All methods must be called from the event-loop goroutine.
type Stage struct {
	container   Container
	renderer    Renderer
	panel       *panel.Panel
	graph       *scene.Graph
	camera      *scene.Camera
	ambient     *scene.AmbientLight
	directional *scene.DirectionalLight
	orbit       *orbit.Controls
	observer    *resize.Observer
	ball        sampler.Ball
	rng         *rand.Rand
	log         *logger.Logger
	running     bool
}

// New mounts r into container and builds the scene: camera, lights, orbit control,
// resize observer and the panel bindings. Nothing is drawn until Start.
// A nil panel gets a private one (bindings still work through Panel()).
func New(container Container, r Renderer, p *panel.Panel, opts Options) *Stage {
	opts = opts.withDefaults()
	if p == nil {
		p = panel.New("stage")
	}
	w, h := container.Size()
	s := &Stage{
		container: container,
		renderer:  r,
		panel:     p,
		graph:     scene.NewGraph(),
		camera:    scene.NewPerspectiveCamera(opts.Fov, aspect(w, h), opts.Near, opts.Far),
		ambient: &scene.AmbientLight{
			Color:     color.RGBA{255, 255, 255, 255},
			Intensity: opts.Ambient,
		},
		directional: &scene.DirectionalLight{
			Color:     color.RGBA{255, 255, 255, 255},
			Intensity: opts.Directional,
		},
		ball: sampler.Ball{Radius: opts.SpawnRadius},
		rng:  opts.Rand,
		log:  opts.Log,
	}

	container.Mount(r)
	s.camera.Target = scene.Vec3{}
	s.camera.Position = opts.CameraPosition
	s.orbit = orbit.New(s.camera)
	r.SetClearColor(opts.ClearColor)

	s.observeContainer()
	s.setupLights()
	s.setupPanel()
	return s
}

func aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

func (s *Stage) observeContainer() {
	s.observer = resize.NewObserver(s.onResize)
	s.observer.Observe(s.container)
	s.container.OnEvents(func() { s.observer.Poll() })
}

func (s *Stage) onResize(w, h int) {
	s.renderer.SetSize(w, h)
	s.camera.Aspect = aspect(w, h)
	s.log.Logf("resize %dx%d", w, h)
}

func (s *Stage) setupLights() {
	s.graph.Add(s.directional)
	s.graph.Add(s.ambient)
}

// Start installs the per-frame callback, replacing any previous one.
func (s *Stage) Start() {
	s.renderer.SetAnimationLoop(s.frame)
	if !s.running {
		s.log.Log("render loop started")
	}
	s.running = true
}

// Stop removes the per-frame callback; the last drawn frame stays on screen.
// Resize and panel events keep being delivered.
func (s *Stage) Stop() {
	s.renderer.SetAnimationLoop(nil)
	if s.running {
		s.log.Log("render loop stopped")
	}
	s.running = false
}

// Running reports whether a per-frame callback is installed.
func (s *Stage) Running() bool {
	return s.running
}

func (s *Stage) frame() {
	s.update()
	s.renderer.Render(s.graph, s.camera)
}

// update keeps the directional light at the camera (headlamp).
func (s *Stage) update() {
	s.directional.Position = s.camera.Position
}

// Graph returns the scene graph.
func (s *Stage) Graph() *scene.Graph { return s.graph }

// Camera returns the live camera.
func (s *Stage) Camera() *scene.Camera { return s.camera }

// Ambient returns the ambient light.
func (s *Stage) Ambient() *scene.AmbientLight { return s.ambient }

// Directional returns the directional light.
func (s *Stage) Directional() *scene.DirectionalLight { return s.directional }

// Orbit returns the orbit control bound to the camera.
func (s *Stage) Orbit() *orbit.Controls { return s.orbit }

// Panel returns the debug panel holding the stage bindings.
func (s *Stage) Panel() *panel.Panel { return s.panel }

// Snapshot returns the current camera position and light intensities.
func (s *Stage) Snapshot() Settings {
	return Settings{
		CameraPosition: s.camera.Position,
		Ambient:        s.ambient.Intensity,
		Directional:    s.directional.Intensity,
	}
}
