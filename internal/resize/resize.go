package resize

// Target is something with a box size in pixels, e.g. the window that hosts the renderer.
type Target interface {
	Size() (width, height int)
}

// Handler receives the new size of the observed target.
type Handler func(width, height int)

// Observer reports size changes of a Target. The host calls Poll once per event-loop
// iteration; the first Poll after Observe always delivers (initial notification), and every
// later Poll delivers when the size differs from the last delivered one. There is no
// debouncing: each change seen by a Poll produces exactly one Handler call.
type Observer struct {
	handler  Handler
	target   Target
	lastW    int
	lastH    int
	notified bool
}

// NewObserver returns an observer that calls h on size changes. It watches nothing until Observe.
func NewObserver(h Handler) *Observer {
	return &Observer{handler: h}
}

// Observe starts watching t, replacing any previous target.
func (o *Observer) Observe(t Target) {
	o.target = t
	o.notified = false
}

// Disconnect stops watching. Later Polls are no-ops.
func (o *Observer) Disconnect() {
	o.target = nil
}

// Poll checks the target size and calls the handler if it changed.
// It reports whether the handler was called.
func (o *Observer) Poll() bool {
	if o.target == nil || o.handler == nil {
		return false
	}
	w, h := o.target.Size()
	if o.notified && w == o.lastW && h == o.lastH {
		return false
	}
	o.lastW, o.lastH = w, h
	o.notified = true
	o.handler(w, h)
	return true
}
