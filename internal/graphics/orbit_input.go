package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-stage/internal/orbit"
)

const (
	rotateSpeed = 0.005 // radians per pixel
	panSpeed    = 0.001 // distance fraction per pixel
	zoomStep    = 0.95  // distance factor per wheel notch
)

// OrbitInput feeds mouse input to orbit controls: left drag rotates, right or middle drag pans,
// the wheel zooms.
type OrbitInput struct {
	controls *orbit.Controls
}

// NewOrbitInput returns an input handler for c.
func NewOrbitInput(c *orbit.Controls) *OrbitInput {
	return &OrbitInput{controls: c}
}

// Update applies this frame's mouse input. When captured is true (the pointer belongs to
// the debug panel or the console) input is ignored.
func (in *OrbitInput) Update(captured bool) {
	if captured {
		return
	}
	d := rl.GetMouseDelta()
	switch {
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		in.controls.Rotate(-d.X*rotateSpeed, -d.Y*rotateSpeed)
	case rl.IsMouseButtonDown(rl.MouseButtonRight), rl.IsMouseButtonDown(rl.MouseButtonMiddle):
		in.controls.Pan(d.X*panSpeed, d.Y*panSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		in.controls.Zoom(math32.Pow(zoomStep, wheel))
	}
}
