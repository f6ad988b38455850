package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-stage/internal/panel"
	"cube-stage/internal/ui"
)

const (
	labelWidth = 130
	valueWidth = 56
)

// PanelView draws a panel.Panel as a column of sliders and buttons and turns mouse input
// into Control.SetFraction and Action.Run calls. Layout is recomputed every frame from the
// theme and the screen size, so it follows window resizes.
type PanelView struct {
	panel  *panel.Panel
	theme  ui.Theme
	active int // index of the slider being dragged, -1 when none
	hover  int // index of the hovered button, -1 when none
}

// NewPanelView returns a view of p styled with theme.
func NewPanelView(p *panel.Panel, theme ui.Theme) *PanelView {
	return &PanelView{panel: p, theme: theme, active: -1, hover: -1}
}

type panelLayout struct {
	bounds  rl.Rectangle
	title   rl.Rectangle
	rows    []rl.Rectangle
	tracks  []rl.Rectangle
	buttons []rl.Rectangle
}

func (v *PanelView) layout() panelLayout {
	th := v.theme
	pad := float32(th.Panel.Padding)
	w := float32(th.Panel.Width)
	titleH := float32(th.Title.Height)
	rowH := float32(th.Row.Height)
	btnH := float32(th.Button.Height)

	ctrls := v.panel.Controls()
	acts := v.panel.Actions()
	h := titleH + pad + float32(len(ctrls))*rowH + float32(len(acts))*(btnH+pad) + pad

	x := float32(th.Panel.Left)
	y := float32(th.Panel.Top)
	if th.Panel.LeftPct >= 0 {
		x = (float32(rl.GetScreenWidth()) - w) * float32(th.Panel.LeftPct) / 100
	}
	if th.Panel.TopPct >= 0 {
		y = (float32(rl.GetScreenHeight()) - h) * float32(th.Panel.TopPct) / 100
	}

	l := panelLayout{
		bounds: rl.NewRectangle(x, y, w, h),
		title:  rl.NewRectangle(x, y, w, titleH),
	}
	cy := y + titleH + pad
	trackW := float32(th.Track.Width)
	if trackW <= 0 || trackW > w-labelWidth-valueWidth {
		trackW = w - labelWidth - valueWidth - 2*pad
	}
	for range ctrls {
		l.rows = append(l.rows, rl.NewRectangle(x+pad, cy, w-2*pad, rowH))
		l.tracks = append(l.tracks, rl.NewRectangle(x+pad+labelWidth, cy+rowH*0.2, trackW, rowH*0.6))
		cy += rowH
	}
	for range acts {
		l.buttons = append(l.buttons, rl.NewRectangle(x+pad, cy, w-2*pad, btnH))
		cy += btnH + pad
	}
	return l
}

// Update handles mouse input for this frame and reports whether the panel owns the mouse
// (pointer over the panel or a slider being dragged), in which case camera input should
// be ignored.
func (v *PanelView) Update() bool {
	l := v.layout()
	mouse := rl.GetMousePosition()
	ctrls := v.panel.Controls()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		for i, row := range l.rows {
			if rl.CheckCollisionPointRec(mouse, row) {
				v.active = i
				break
			}
		}
	}
	if v.active >= 0 && v.active < len(ctrls) {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			tr := l.tracks[v.active]
			ctrls[v.active].SetFraction(clamp01((mouse.X - tr.X) / tr.Width))
		} else {
			v.active = -1
		}
	}

	v.hover = -1
	for i, b := range l.buttons {
		if rl.CheckCollisionPointRec(mouse, b) {
			v.hover = i
			if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
				if a := v.panel.Actions()[i]; a.Run != nil {
					a.Run()
				}
			}
		}
	}
	return v.active >= 0 || rl.CheckCollisionPointRec(mouse, l.bounds)
}

func clamp01(t float32) float32 {
	return min(max(t, 0), 1)
}

func fillRect(r rl.Rectangle, c color.RGBA) {
	if c.A == 0 {
		return
	}
	rl.DrawRectangleRec(r, rl.NewColor(c.R, c.G, c.B, c.A))
}

func text(s string, x, y float32, style ui.ComputedStyle) {
	rl.DrawText(s, int32(x), int32(y), style.FontSize, rl.NewColor(style.Color.R, style.Color.G, style.Color.B, style.Color.A))
}

// Draw renders the panel. Call after the scene so it sits on top.
func (v *PanelView) Draw() {
	th := v.theme
	l := v.layout()

	fillRect(l.bounds, th.Panel.Background)
	fillRect(l.title, th.Title.Background)
	text(v.panel.Title, l.title.X+float32(th.Title.Padding), l.title.Y+(l.title.Height-float32(th.Title.FontSize))/2, th.Title)

	for i, c := range v.panel.Controls() {
		row, tr := l.rows[i], l.tracks[i]
		ty := row.Y + (row.Height-float32(th.Row.FontSize))/2
		text(c.Label, row.X, ty, th.Row)
		fillRect(tr, th.Track.Background)
		fill := tr
		fill.Width = tr.Width * c.Fraction()
		fillRect(fill, th.Fill.Background)
		text(c.Format(), tr.X+tr.Width+float32(th.Row.Padding), ty, th.Row)
	}

	for i, a := range v.panel.Actions() {
		style := th.Button
		if i == v.hover {
			style = th.ButtonHover
		}
		b := l.buttons[i]
		fillRect(b, style.Background)
		if style.HasBorder {
			rl.DrawRectangleLinesEx(b, 1, rl.NewColor(style.Border.R, style.Border.G, style.Border.B, style.Border.A))
		}
		w := float32(rl.MeasureText(a.Label, style.FontSize))
		text(a.Label, b.X+(b.Width-w)/2, b.Y+(b.Height-float32(style.FontSize))/2, style)
	}
}
