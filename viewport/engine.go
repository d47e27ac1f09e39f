package viewport

import (
	"io"
	"log"
)

// Option configures an [Engine].
type Option func(*Engine)

// WithScrollFunc sets a handler called with the requested offsets whenever an
// event asks to scroll. In controlled mode this is the only effect of such an
// event; the owner is expected to supply the new offsets on the next cycle.
func WithScrollFunc(handler func(top, left int)) Option {
	return func(e *Engine) {
		e.scrolled = handler
	}
}

// WithLogger sets the logger used to trace state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine sequences viewport events: the one-time measurement, native scroll
// notifications and pointer drags. It is driven from a single event loop and
// is not safe for concurrent use.
type Engine struct {
	grid     Grid
	supplied Viewport
	state    *State
	drag     Drag

	scrolled func(top, left int)
	logger   *log.Logger
}

// NewEngine returns an engine for grid. The ownership mode is decided from
// supplied and never changes.
func NewEngine(grid Grid, supplied Viewport, opts ...Option) *Engine {
	e := &Engine{
		grid:     grid,
		supplied: supplied,
		state:    NewState(supplied),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger.Printf("viewport: new engine, %s mode", e.state.Mode())
	return e
}

// Grid returns the grid shape.
func (e *Engine) Grid() Grid {
	return e.grid
}

// SetGrid replaces the grid shape.
func (e *Engine) SetGrid(grid Grid) {
	e.grid = grid
}

// SetSupplied sets the viewport supplied by the owner for this cycle. It is
// ignored in uncontrolled mode.
func (e *Engine) SetSupplied(vp Viewport) {
	e.supplied = vp
}

// Mode returns the ownership mode.
func (e *Engine) Mode() Mode {
	return e.state.Mode()
}

// State returns the viewport state.
func (e *Engine) State() *State {
	return e.state
}

// Viewport returns the viewport of the current cycle.
func (e *Engine) Viewport() Viewport {
	return e.state.Resolve(e.supplied)
}

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool {
	return e.drag.Active()
}

// Mount applies the one-time measurement of the mounted viewport. It reports
// whether the measurement was taken.
func (e *Engine) Mount(measured Viewport) bool {
	if !e.state.Measure(measured) {
		return false
	}
	e.logger.Printf("viewport: mounted %dx%d at (%d,%d)",
		measured.ClientWidth, measured.ClientHeight, measured.ScrollLeft, measured.ScrollTop)
	return true
}

// Resize updates the client dimensions of a mounted uncontrolled viewport.
func (e *Engine) Resize(height, width int) bool {
	return e.state.Resize(height, width)
}

// ready reports whether scroll-driven updates may be processed.
func (e *Engine) ready() bool {
	return e.state.Mode() == Controlled || e.state.Measured()
}

// HandleScroll processes a native scroll notification. While a drag session
// is active, the horizontal offset belongs to the drag and is left alone.
func (e *Engine) HandleScroll(top, left int) {
	if !e.ready() {
		return
	}
	if e.drag.Active() {
		left = e.Viewport().ScrollLeft
	}
	e.apply(top, left)
}

// PressPointer starts a drag at pointer column x.
func (e *Engine) PressPointer(x int) {
	if !e.ready() {
		return
	}
	e.drag.Press(x, e.Viewport().ScrollLeft)
	e.logger.Printf("viewport: drag started at %d", x)
}

// MovePointer continues a drag and reports whether the offset was updated.
func (e *Engine) MovePointer(x int) bool {
	left, ok := e.drag.Move(x)
	if !ok {
		return false
	}
	e.apply(e.Viewport().ScrollTop, left)
	return true
}

// ReleasePointer ends a drag.
func (e *Engine) ReleasePointer() {
	if e.drag.Release() {
		e.logger.Printf("viewport: drag ended")
	}
}

func (e *Engine) apply(top, left int) {
	if e.state.Mode() == Uncontrolled {
		e.state.Scroll(top, left)
	}
	if e.scrolled != nil {
		e.scrolled(top, left)
	}
}

// Visible returns the visible row and column ranges for the current cycle.
func (e *Engine) Visible() (rows, cols Range) {
	return Visible(e.grid, e.Viewport())
}

// Render composes the visible cells of e for the current cycle.
func Render[T any](e *Engine, render RenderFunc[T]) ([]Cell[T], error) {
	return Compose(e.grid, e.Viewport(), render)
}
