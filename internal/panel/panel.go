package panel

import (
	"fmt"
	"math"
)

// Binding links one panel scalar to a live value. Get reads the current value (so edits made
// elsewhere, e.g. by the orbit control, show up on the slider); Set writes it.
type Binding struct {
	Label string
	Min   float32
	Max   float32
	Step  float32
	Get   func() float32
	Set   func(float32)
}

// Control is a registered Binding plus its change callbacks.
type Control struct {
	Binding
	onChange []func(float32)
}

// OnChange adds fn to the callbacks run after every Set. Returns c for chaining.
func (c *Control) OnChange(fn func(float32)) *Control {
	c.onChange = append(c.onChange, fn)
	return c
}

// Value returns the live value through the binding's getter.
func (c *Control) Value() float32 {
	if c.Get == nil {
		return c.Min
	}
	return c.Get()
}

// Set clamps v to [Min, Max], snaps it to the nearest Step above Min, writes it through the
// binding and then runs the change callbacks. It returns the value actually written.
func (c *Control) Set(v float32) float32 {
	v = c.normalize(v)
	if c.Binding.Set != nil {
		c.Binding.Set(v)
	}
	for _, fn := range c.onChange {
		fn(v)
	}
	return v
}

// Fraction returns where the live value sits in [Min, Max] as 0..1 (slider fill).
func (c *Control) Fraction() float32 {
	span := c.Max - c.Min
	if span <= 0 {
		return 0
	}
	t := (c.Value() - c.Min) / span
	return float32(math.Max(0, math.Min(1, float64(t))))
}

// SetFraction sets the value at fraction t of the range (slider drag).
func (c *Control) SetFraction(t float32) float32 {
	return c.Set(c.Min + t*(c.Max-c.Min))
}

// Format returns the value as text with as many decimals as Step needs.
func (c *Control) Format() string {
	return fmt.Sprintf("%.*f", decimals(c.Step), c.Value())
}

func (c *Control) normalize(v float32) float32 {
	x := float64(v)
	if c.Step > 0 {
		scale := math.Pow(10, float64(decimals(c.Step)))
		step := math.Round(float64(c.Step)*scale) / scale
		lo := float64(c.Min)
		x = lo + math.Round((x-lo)/step)*step
		x = math.Round(x*scale) / scale
	}
	x = math.Max(float64(c.Min), math.Min(float64(c.Max), x))
	return float32(x)
}

func decimals(step float32) int {
	if step <= 0 {
		return 2
	}
	n := 0
	for s := float64(step); s < 0.999 && n < 6; s *= 10 {
		n++
	}
	return n
}

// Action is a button that runs a function.
type Action struct {
	Label string
	Run   func()
}

// Panel is an ordered set of slider controls and action buttons. It holds no drawing state;
// graphics.PanelView draws it and feeds input back through Control.SetFraction and Trigger.
type Panel struct {
	Title    string
	controls []*Control
	actions  []*Action
}

// New returns an empty panel.
func New(title string) *Panel {
	return &Panel{Title: title}
}

// Add registers b and returns its control.
func (p *Panel) Add(b Binding) *Control {
	c := &Control{Binding: b}
	p.controls = append(p.controls, c)
	return c
}

// AddAction registers a button labelled label that calls run.
func (p *Panel) AddAction(label string, run func()) *Action {
	a := &Action{Label: label, Run: run}
	p.actions = append(p.actions, a)
	return a
}

// Controls returns the controls in registration order.
func (p *Panel) Controls() []*Control {
	return p.controls
}

// Actions returns the actions in registration order.
func (p *Panel) Actions() []*Action {
	return p.actions
}

// Find returns the control with the given label.
func (p *Panel) Find(label string) (*Control, bool) {
	for _, c := range p.controls {
		if c.Label == label {
			return c, true
		}
	}
	return nil, false
}

// Trigger runs the action with the given label.
func (p *Panel) Trigger(label string) error {
	for _, a := range p.actions {
		if a.Label == label {
			if a.Run != nil {
				a.Run()
			}
			return nil
		}
	}
	return fmt.Errorf("panel: unknown action %q", label)
}
