package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays at the top-left: FPS, heap allocation and the scene entity
// count. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Entities, when set, reports the number of scene entities; drawn whenever ShowFPS is on.
	Entities func() int

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter (and entity count) is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	d.lines = nil
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
	d.lines = nil
}

func (d *Debug) refresh() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
		if d.Entities != nil {
			d.lines = append(d.lines, fmt.Sprintf("Entities: %d", d.Entities()))
		}
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
}

// Draw renders the enabled overlays. Call last in the draw loop.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		d.refresh()
	}
	y := int32(padding)
	for _, line := range d.lines {
		rl.DrawText(line, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
