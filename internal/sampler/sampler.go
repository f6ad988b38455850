package sampler

import (
	"math"
	"math/rand"

	"github.com/chewxy/math32"

	"cube-stage/internal/scene"
)

// Source is the subset of *rand.Rand the sampler needs. Float32 must return values in [0, 1).
type Source interface {
	Float32() float32
}

var _ Source = (*rand.Rand)(nil)

// Sample is one draw from a Ball: the spherical coordinates and the resulting point.
// Theta is the azimuth in [0, 2π), Phi the polar angle in [0, π].
type Sample struct {
	Radius float32
	Theta  float32
	Phi    float32
	Point  scene.Vec3
}

// Ball samples points around the origin. The direction is uniform over the unit sphere
// (phi = acos(2v-1), not π·v, which would crowd the poles). The radius is uniform in
// [0, Radius), so points are denser near the center than a volume-uniform draw.
type Ball struct {
	Radius float32
}

// shrink is the per-step scale used to pull a rounded point back inside the ball.
const shrink = 1 - 1e-6

// Sample draws one point using three values from rng: radius, azimuth, polar.
// The point's norm is strictly below Radius even after float32 rounding.
func (b Ball) Sample(rng Source) Sample {
	r := b.Radius * rng.Float32()
	if r >= b.Radius && b.Radius > 0 {
		r = math32.Nextafter(b.Radius, 0)
	}
	u := rng.Float32()
	v := rng.Float32()

	theta := 2 * math32.Pi * u
	phi := math32.Acos(2*v - 1)

	rr, t, ph := float64(r), float64(theta), float64(phi)
	p := scene.Vec3{
		X: float32(rr * math.Sin(ph) * math.Cos(t)),
		Y: float32(rr * math.Sin(ph) * math.Sin(t)),
		Z: float32(rr * math.Cos(ph)),
	}
	for b.Radius > 0 && !within(p, b.Radius) {
		p = p.Scale(shrink)
	}
	return Sample{Radius: r, Theta: theta, Phi: phi, Point: p}
}

// within reports whether p lies strictly inside radius, in both float32 and float64.
func within(p scene.Vec3, radius float32) bool {
	x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
	return p.Length() < radius && math.Sqrt(x*x+y*y+z*z) < float64(radius)
}

// Point is Sample(rng).Point.
func (b Ball) Point(rng Source) scene.Vec3 {
	return b.Sample(rng).Point
}
