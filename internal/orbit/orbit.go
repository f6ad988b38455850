package orbit

import (
	"github.com/chewxy/math32"

	"cube-stage/internal/scene"
)

// minPolar keeps the camera just short of the poles so the view never flips over Up.
const minPolar = 0.01

// Controls rotates, pans and zooms a camera around its Target. Every call starts from the
// camera's current Position, so edits made elsewhere (debug panel sliders) are picked up.
type Controls struct {
	Camera      *scene.Camera
	MinDistance float32
	MaxDistance float32
	Enabled     bool
}

// New returns controls bound to cam with a distance range of [0.1, 500].
func New(cam *scene.Camera) *Controls {
	return &Controls{
		Camera:      cam,
		MinDistance: 0.1,
		MaxDistance: 500,
		Enabled:     true,
	}
}

// spherical returns distance, azimuth around +Y (0 on +Z) and polar angle from +Y.
func (c *Controls) spherical() (radius, azimuth, polar float32) {
	off := c.Camera.Position.Sub(c.Camera.Target)
	radius = off.Length()
	if radius == 0 {
		return 0, 0, math32.Pi / 2
	}
	azimuth = math32.Atan2(off.X, off.Z)
	polar = math32.Acos(clamp(off.Y/radius, -1, 1))
	return radius, azimuth, polar
}

func (c *Controls) place(radius, azimuth, polar float32) {
	sinPolar := math32.Sin(polar)
	off := scene.Vec3{
		X: radius * sinPolar * math32.Sin(azimuth),
		Y: radius * math32.Cos(polar),
		Z: radius * sinPolar * math32.Cos(azimuth),
	}
	c.Camera.Position = c.Camera.Target.Add(off)
}

// Rotate orbits the camera by dAzimuth around Up and dPolar toward/away from it (radians).
func (c *Controls) Rotate(dAzimuth, dPolar float32) {
	if !c.Enabled {
		return
	}
	r, az, pol := c.spherical()
	if r == 0 {
		return
	}
	c.place(r, az+dAzimuth, clamp(pol+dPolar, minPolar, math32.Pi-minPolar))
}

// Pan slides camera and target together along the view plane. dx and dy are fractions of the
// current distance, so a pan feels the same at any zoom level.
func (c *Controls) Pan(dx, dy float32) {
	if !c.Enabled {
		return
	}
	cam := c.Camera
	forward := cam.Target.Sub(cam.Position)
	dist := forward.Length()
	if dist == 0 {
		return
	}
	forward = forward.Scale(1 / dist)
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward)
	move := right.Scale(-dx * dist).Add(up.Scale(dy * dist))
	cam.Position = cam.Position.Add(move)
	cam.Target = cam.Target.Add(move)
}

// Zoom multiplies the distance to the target by factor (<1 moves closer), within
// [MinDistance, MaxDistance].
func (c *Controls) Zoom(factor float32) {
	if !c.Enabled || factor <= 0 {
		return
	}
	r, az, pol := c.spherical()
	if r == 0 {
		return
	}
	c.place(clamp(r*factor, c.MinDistance, c.MaxDistance), az, pol)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
