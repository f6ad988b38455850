package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-stage/internal/stage"
)

// WindowOptions configures the desktop window.
type WindowOptions struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// Window is the resizable raylib window that hosts the renderer. It implements stage.Container.
// InitWindow runs in NewWindow, so GPU resources may be created any time after it returns.
type Window struct {
	hooks   []func()
	closers []func()
	closed  bool
}

// closeWindow is rl.CloseWindow; tests replace it since there is no GL context.
var closeWindow = rl.CloseWindow

var _ stage.Container = (*Window)(nil)

// NewWindow opens the window. ESC is reserved for the console, so it does not quit;
// close via the window button.
func NewWindow(opts WindowOptions) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	return &Window{}
}

// Size returns the current drawable size in pixels.
func (w *Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Mount sizes the renderer's output surface to the window.
func (w *Window) Mount(r stage.Renderer) {
	r.SetSize(w.Size())
}

// OnEvents registers fn to run at the start of every loop iteration.
func (w *Window) OnEvents(fn func()) {
	w.hooks = append(w.hooks, fn)
}

// OnClose registers fn to free GPU resources in Close, while the GL context still exists.
// Closers run in reverse registration order.
func (w *Window) OnClose(fn func()) {
	w.closers = append(w.closers, fn)
}

// Close runs the OnClose functions and then destroys the window and its GL context.
// Calling it again does nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for i := len(w.closers) - 1; i >= 0; i-- {
		w.closers[i]()
	}
	closeWindow()
}

// Run drives the main loop until the window is asked to close. Each iteration it runs the
// event hooks, then update (input, frame callback), then clears the screen and calls draw.
// The window stays open; call Close afterwards.
func (w *Window) Run(update, draw func()) {
	for !rl.WindowShouldClose() {
		for _, fn := range w.hooks {
			fn()
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// ToggleFullscreen switches between fullscreen and windowed mode.
func (w *Window) ToggleFullscreen() {
	rl.ToggleFullscreen()
}
