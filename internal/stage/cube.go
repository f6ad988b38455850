package stage

import (
	"image/color"
	"math/rand"

	"cube-stage/internal/scene"
)

// AddCube inserts a box with random extents (each in [0,1)) and a random colour, drawn with
// additive blending, at a point sampled from the spawn ball. The cube is never removed.
func (s *Stage) AddCube() *scene.Cube {
	pos := s.ball.Point(s.rng)
	cube := &scene.Cube{
		Size:     scene.NewVec3(s.rng.Float32(), s.rng.Float32(), s.rng.Float32()),
		Color:    randomColor(s.rng),
		Blending: scene.AdditiveBlending,
		Position: pos,
	}
	s.graph.Add(cube)
	s.log.Logf("cube at (%.2f, %.2f, %.2f), %d entities", pos.X, pos.Y, pos.Z, s.graph.Len())
	return cube
}

// randomColor picks a 24-bit RGB value uniformly from [0, 0xffffff).
func randomColor(rng *rand.Rand) color.RGBA {
	hex := uint32(rng.Float64() * 0xffffff)
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
