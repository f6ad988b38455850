package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	samples = 20000
	bins    = 10
	// chi-square critical value for 9 degrees of freedom at p = 0.001.
	chiSquare9 = 27.88
)

func norm(s Sample) float64 {
	x, y, z := float64(s.Point.X), float64(s.Point.Y), float64(s.Point.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

func chiSquare(counts []int, total int) float64 {
	expected := float64(total) / float64(len(counts))
	var sum float64
	for _, c := range counts {
		d := float64(c) - expected
		sum += d * d / expected
	}
	return sum
}

func bin(v, lo, hi float64) int {
	i := int((v - lo) / (hi - lo) * bins)
	if i < 0 {
		i = 0
	}
	if i >= bins {
		i = bins - 1
	}
	return i
}

func TestSampleWithinRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Ball{Radius: 2.5}
	for i := 0; i < samples; i++ {
		s := b.Sample(rng)
		require.GreaterOrEqual(t, s.Radius, float32(0))
		require.Less(t, s.Radius, float32(2.5))
		assert.InDelta(t, float64(s.Radius), norm(s), 1e-4)
		require.Less(t, norm(s), 2.5)
		require.Less(t, s.Point.Length(), float32(2.5))
	}
}

func TestAzimuthUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := Ball{Radius: 2.5}
	counts := make([]int, bins)
	for i := 0; i < samples; i++ {
		s := b.Sample(rng)
		require.GreaterOrEqual(t, s.Theta, float32(0))
		require.LessOrEqual(t, s.Theta, float32(2*math.Pi))
		counts[bin(float64(s.Theta), 0, 2*math.Pi)]++
	}
	assert.Less(t, chiSquare(counts, samples), chiSquare9)
}

func TestCosPolarUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := Ball{Radius: 1}
	counts := make([]int, bins)
	for i := 0; i < samples; i++ {
		s := b.Sample(rng)
		counts[bin(math.Cos(float64(s.Phi)), -1, 1)]++
	}
	assert.Less(t, chiSquare(counts, samples), chiSquare9)
}

func TestPolarNotLinear(t *testing.T) {
	// With phi = π·v the polar angle itself would be uniform; the inverse transform
	// concentrates phi around the equator instead.
	rng := rand.New(rand.NewSource(4))
	b := Ball{Radius: 1}
	counts := make([]int, bins)
	for i := 0; i < samples; i++ {
		counts[bin(float64(b.Sample(rng).Phi), 0, math.Pi)]++
	}
	assert.Greater(t, chiSquare(counts, samples), chiSquare9)
	assert.Greater(t, counts[bins/2], counts[0])
}

func TestRadiusUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := Ball{Radius: 2.5}
	counts := make([]int, bins)
	for i := 0; i < samples; i++ {
		counts[bin(float64(b.Sample(rng).Radius), 0, 2.5)]++
	}
	assert.Less(t, chiSquare(counts, samples), chiSquare9)
}

type fixed []float32

func (f *fixed) Float32() float32 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestSampleKnownValues(t *testing.T) {
	// r = 2, theta = π/2, phi = π/2 -> (0, 2, 0)
	src := fixed{0.8, 0.25, 0.5}
	p := Ball{Radius: 2.5}.Point(&src)
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 2, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
}

func TestSampleAtTopOfRadiusStaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	top := math32.Nextafter(1, 0)
	for _, radius := range []float32{2.5, 1, 7.3} {
		b := Ball{Radius: radius}
		for i := 0; i < samples; i++ {
			src := fixed{top, rng.Float32(), rng.Float32()}
			s := b.Sample(&src)
			require.Less(t, s.Radius, radius)
			require.Less(t, s.Point.Length(), radius)
			require.Less(t, norm(s), float64(radius))
		}
	}
}
