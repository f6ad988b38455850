package scene

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Vec3 is a position or direction in world space (Y-up).
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Array returns v as [x, y, z], the layout shader uniforms and config files use.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Camera is a perspective camera looking at Target. Fov is the vertical field of view in degrees.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	Fov      float32
	Aspect   float32
	Near     float32
	Far      float32
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z, with +Y up.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Target: Vec3{0, 0, -1},
		Up:     Vec3{0, 1, 0},
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// Entity is anything that can live in a Graph.
type Entity interface {
	Kind() string
}

// AmbientLight adds a uniform, directionless contribution to every surface.
type AmbientLight struct {
	Color     color.RGBA
	Intensity float32
}

// Kind implements Entity.
func (*AmbientLight) Kind() string { return "ambient" }

// DirectionalLight shines from Position toward the origin with no falloff.
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float32
	Position  Vec3
}

// Kind implements Entity.
func (*DirectionalLight) Kind() string { return "directional" }

// Blending selects how a mesh is composited over what is already drawn.
type Blending int

const (
	NormalBlending Blending = iota
	AdditiveBlending
)

// Cube is a box mesh. Size is the box extent on X, Y and Z; Position is its center.
type Cube struct {
	Size      Vec3
	Color     color.RGBA
	Blending  Blending
	Wireframe bool
	Position  Vec3
}

// Kind implements Entity.
func (*Cube) Kind() string { return "cube" }

// Graph is the flat, append-only list of entities composited into one frame.
// Order is insertion order.
type Graph struct {
	entities []Entity
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends e. Entities are never removed.
func (g *Graph) Add(e Entity) {
	g.entities = append(g.entities, e)
}

// Len returns the number of entities in the graph.
func (g *Graph) Len() int {
	return len(g.entities)
}

// Entities returns the entities in insertion order. The slice is shared; do not modify it.
func (g *Graph) Entities() []Entity {
	return g.entities
}

// Cubes returns every cube in insertion order.
func (g *Graph) Cubes() []*Cube {
	var out []*Cube
	for _, e := range g.entities {
		if c, ok := e.(*Cube); ok {
			out = append(out, c)
		}
	}
	return out
}

// Lights returns the first ambient and directional light in the graph (nil when absent).
func (g *Graph) Lights() (*AmbientLight, *DirectionalLight) {
	var amb *AmbientLight
	var dir *DirectionalLight
	for _, e := range g.entities {
		switch l := e.(type) {
		case *AmbientLight:
			if amb == nil {
				amb = l
			}
		case *DirectionalLight:
			if dir == nil {
				dir = l
			}
		}
	}
	return amb, dir
}
