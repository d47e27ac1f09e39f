package gridview

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/gridview/keybind"
	"github.com/ayn2op/gridview/viewport"
)

// ErrNoCellFunc is reported by [GridView.Err] when the view was drawn without
// a cell function.
var ErrNoCellFunc = errors.New("gridview: no cell function")

// CellFunc returns the primitive shown for the cell at column x and row y.
// The placement is relative to the grid origin. Returning nil leaves the cell
// empty.
type CellFunc func(x, y int, p viewport.Placement) Primitive

// GridView displays a virtual grid of uniformly sized cells. Only the cells
// intersecting the view are requested from the cell function.
//
// The view either owns its scroll state (the default) or, when a viewport
// with a known client size is set before it is first used, shows exactly the
// viewport supplied by the owner and reports scroll requests through the
// scroll func.
type GridView struct {
	*Box

	grid     viewport.Grid
	supplied viewport.Viewport
	engine   *viewport.Engine

	cell     CellFunc
	scrolled func(top, left int)
	logger   *log.Logger
	err      error

	// Offsets of the last scroll request.
	requestedTop, requestedLeft int

	keymap      Keymap
	dragEnabled bool
	scrollStep  int
	scrollBars  bool
	vertical    *ScrollBar
	horizontal  *ScrollBar
}

// NewGridView returns a one-by-one grid with unsized cells.
func NewGridView() *GridView {
	return &GridView{
		Box:         NewBox(),
		grid:        viewport.DefaultGrid(),
		supplied:    viewport.UnknownViewport(),
		keymap:      DefaultKeymap(),
		dragEnabled: true,
		scrollStep:  1,
		vertical:    NewScrollBar(OrientationVertical),
		horizontal:  NewScrollBar(OrientationHorizontal),
	}
}

// SetGrid sets the grid shape.
func (g *GridView) SetGrid(grid viewport.Grid) *GridView {
	g.grid = grid
	if g.engine != nil {
		g.engine.SetGrid(grid)
	}
	return g
}

// GetGrid returns the grid shape.
func (g *GridView) GetGrid() viewport.Grid {
	return g.grid
}

// SetShape sets the number of rows and columns.
func (g *GridView) SetShape(rows, columns int) *GridView {
	grid := g.grid
	grid.RowCount, grid.ColumnCount = rows, columns
	return g.SetGrid(grid)
}

// SetCellSize sets the height and width of every cell. A size of 0 makes the
// cells of that axis fill the view.
func (g *GridView) SetCellSize(height, width int) *GridView {
	grid := g.grid
	grid.RowHeight, grid.ColumnWidth = height, width
	return g.SetGrid(grid)
}

// SetViewport supplies the viewport for the next draw. The first viewport
// given before the view is used decides whether the owner controls the view;
// later calls only matter in controlled mode.
func (g *GridView) SetViewport(vp viewport.Viewport) *GridView {
	g.supplied = vp
	if g.engine != nil {
		g.engine.SetSupplied(vp)
	}
	return g
}

// SetCellFunc sets the function producing the visible cells.
func (g *GridView) SetCellFunc(cell CellFunc) *GridView {
	g.cell = cell
	return g
}

// SetScrollFunc sets a handler called with the offsets requested by scroll
// wheel, keyboard or drag input.
func (g *GridView) SetScrollFunc(handler func(top, left int)) *GridView {
	g.scrolled = handler
	return g
}

// SetLogger sets a logger tracing viewport transitions. It takes effect when
// the view is first used.
func (g *GridView) SetLogger(logger *log.Logger) *GridView {
	g.logger = logger
	return g
}

// SetKeymap sets the keybinds used for keyboard scrolling.
func (g *GridView) SetKeymap(keymap Keymap) *GridView {
	g.keymap = keymap
	return g
}

// GetKeymap returns the keybinds used for keyboard scrolling.
func (g *GridView) GetKeymap() Keymap {
	return g.keymap
}

// SetDragEnabled toggles panning the view horizontally by dragging it with
// the left mouse button.
func (g *GridView) SetDragEnabled(enabled bool) *GridView {
	g.dragEnabled = enabled
	return g
}

// SetScrollStep sets the number of rows or columns moved per wheel notch or
// arrow key.
func (g *GridView) SetScrollStep(step int) *GridView {
	g.scrollStep = max(step, 1)
	return g
}

// SetScrollBars toggles scroll bars along the right and bottom edges.
func (g *GridView) SetScrollBars(show bool) *GridView {
	g.scrollBars = show
	return g
}

// Err returns the error of the last draw, if any.
func (g *GridView) Err() error {
	return g.err
}

// Mode returns who owns the scroll state.
func (g *GridView) Mode() viewport.Mode {
	return g.viewportEngine().Mode()
}

// Viewport returns the viewport used by the last draw or event.
func (g *GridView) Viewport() viewport.Viewport {
	return g.viewportEngine().Viewport()
}

// Visible returns the visible row and column ranges.
func (g *GridView) Visible() (rows, cols viewport.Range) {
	return g.viewportEngine().Visible()
}

// RootPlacement returns the placement of the view's own origin. Only a view
// owning its scroll state establishes a positioning context.
func (g *GridView) RootPlacement() viewport.Placement {
	return g.viewportEngine().State().RootPlacement()
}

// viewportEngine returns the engine, creating it on first use. The ownership
// mode is fixed from then on.
func (g *GridView) viewportEngine() *viewport.Engine {
	if g.engine == nil {
		opts := []viewport.Option{viewport.WithScrollFunc(g.onScroll)}
		if g.logger != nil {
			opts = append(opts, viewport.WithLogger(g.logger))
		}
		g.engine = viewport.NewEngine(g.grid, g.supplied, opts...)
	}
	return g.engine
}

func (g *GridView) onScroll(top, left int) {
	g.requestedTop, g.requestedLeft = top, left
	if g.scrolled != nil {
		g.scrolled(top, left)
	}
}

// clientRect returns the area available to cells, excluding scroll bars.
func (g *GridView) clientRect() (int, int, int, int) {
	x, y, width, height := g.GetInnerRect()
	if g.scrollBars {
		width, height = max(width-1, 0), max(height-1, 0)
	}
	return x, y, width, height
}

// Draw draws this primitive onto the screen.
func (g *GridView) Draw(screen tcell.Screen) {
	g.DrawForSubclass(screen, g)

	if g.cell == nil {
		g.err = ErrNoCellFunc
		return
	}

	e := g.viewportEngine()
	x, y, width, height := g.clientRect()
	if width <= 0 || height <= 0 {
		return
	}
	if e.Mode() == viewport.Uncontrolled {
		if !e.Mount(viewport.Viewport{ClientHeight: height, ClientWidth: width}) {
			e.Resize(height, width)
		}
	}

	cells, err := viewport.Render(e, viewport.RenderFunc[Primitive](g.cell))
	g.err = err
	if err != nil {
		return
	}

	vp := e.Viewport()
	offsetX, offsetY := max(vp.ScrollLeft, 0), max(vp.ScrollTop, 0)
	cellWidth, cellHeight := g.grid.ColumnWidth, g.grid.RowHeight
	if cellWidth == 0 {
		cellWidth, offsetX = width, 0
	}
	if cellHeight == 0 {
		cellHeight, offsetY = height, 0
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, c := range cells {
		if c.Content == nil {
			continue
		}
		c.Content.SetRect(x+c.Placement.X-offsetX, y+c.Placement.Y-offsetY, cellWidth, cellHeight)
		c.Content.Draw(clipped)
	}

	if g.scrollBars {
		g.drawScrollBars(screen, vp, x, y, width, height)
	}
}

func (g *GridView) drawScrollBars(screen tcell.Screen, vp viewport.Viewport, x, y, width, height int) {
	contentWidth, contentHeight := g.grid.ContentSize()
	if contentHeight != viewport.Fill {
		g.vertical.SetLengths(ScrollLengths{ContentLen: contentHeight, ViewportLen: height})
		g.vertical.SetOffset(vp.ScrollTop)
		g.vertical.SetRect(x+width, y, 1, height)
		g.vertical.Draw(screen)
	}
	if contentWidth != viewport.Fill {
		g.horizontal.SetLengths(ScrollLengths{ContentLen: contentWidth, ViewportLen: width})
		g.horizontal.SetOffset(vp.ScrollLeft)
		g.horizontal.SetRect(x, y+height, width, 1)
		g.horizontal.Draw(screen)
	}
}

// maxScroll returns the largest offsets a native scroll may reach. An axis
// without content size or client size does not scroll.
func (g *GridView) maxScroll(vp viewport.Viewport) (top, left int) {
	contentWidth, contentHeight := g.grid.ContentSize()
	if contentHeight != viewport.Fill && vp.ClientHeight != viewport.Unknown {
		top = max(contentHeight-vp.ClientHeight, 0)
	}
	if contentWidth != viewport.Fill && vp.ClientWidth != viewport.Unknown {
		left = max(contentWidth-vp.ClientWidth, 0)
	}
	return top, left
}

// scrollTo issues a native scroll to the given offsets, clamped to the
// content.
func (g *GridView) scrollTo(top, left int) Command {
	e := g.viewportEngine()
	vp := e.Viewport()
	if vp.ClientHeight == viewport.Unknown && vp.ClientWidth == viewport.Unknown {
		return nil
	}
	maxTop, maxLeft := g.maxScroll(vp)
	top = min(max(top, 0), maxTop)
	left = min(max(left, 0), maxLeft)
	if e.Dragging() {
		// The drag owns the horizontal offset.
		left = vp.ScrollLeft
	}
	if top == vp.ScrollTop && left == vp.ScrollLeft {
		return nil
	}
	e.HandleScroll(top, left)
	return BatchCommand{ScrollCommand{Top: g.requestedTop, Left: g.requestedLeft}, RedrawCommand{}}
}

// scrollBy scrolls by the given number of rows and columns.
func (g *GridView) scrollBy(rows, columns int) Command {
	vp := g.viewportEngine().Viewport()
	top, left := max(vp.ScrollTop, 0), max(vp.ScrollLeft, 0)
	return g.scrollTo(top+rows*max(g.grid.RowHeight, 1), left+columns*max(g.grid.ColumnWidth, 1))
}

// InputHandler scrolls the view with the keymap's keys.
func (g *GridView) InputHandler(event *tcell.EventKey) Command {
	vp := g.viewportEngine().Viewport()
	page := max(vp.ClientHeight, 1)
	k := g.keymap
	switch {
	case keybind.Matches(event, k.ScrollUp):
		return g.scrollBy(-g.scrollStep, 0)
	case keybind.Matches(event, k.ScrollDown):
		return g.scrollBy(g.scrollStep, 0)
	case keybind.Matches(event, k.ScrollLeft):
		return g.scrollBy(0, -g.scrollStep)
	case keybind.Matches(event, k.ScrollRight):
		return g.scrollBy(0, g.scrollStep)
	case keybind.Matches(event, k.PageUp):
		return g.scrollTo(vp.ScrollTop-page, vp.ScrollLeft)
	case keybind.Matches(event, k.PageDown):
		return g.scrollTo(max(vp.ScrollTop, 0)+page, vp.ScrollLeft)
	case keybind.Matches(event, k.Home):
		return g.scrollTo(0, 0)
	case keybind.Matches(event, k.End):
		top, _ := g.maxScroll(vp)
		return g.scrollTo(top, vp.ScrollLeft)
	}
	return nil
}

// MouseHandler pans the view while the left button is held and scrolls it
// with the wheel.
func (g *GridView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	e := g.viewportEngine()
	x, y := event.Position()

	// Follow-up events of a drag arrive here even outside the view.
	if e.Dragging() {
		switch action {
		case MouseMove:
			if e.MovePointer(x) {
				scroll := ScrollCommand{Top: g.requestedTop, Left: g.requestedLeft}
				return g, BatchCommand{ConsumeEventCommand{}, scroll, RedrawCommand{}}
			}
			return g, ConsumeEventCommand{}
		case MouseLeftDown:
			e.PressPointer(x)
			return g, ConsumeEventCommand{}
		case MouseLeftUp:
			e.ReleasePointer()
			return nil, AppendCommand(ConsumeEventCommand{}, RedrawCommand{})
		}
		return g, ConsumeEventCommand{}
	}

	if !g.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		focus := SetFocusCommand{Target: g}
		if !g.dragEnabled {
			return nil, focus
		}
		e.PressPointer(x)
		if !e.Dragging() {
			return nil, focus
		}
		return g, BatchCommand{focus, ConsumeEventCommand{}}
	case MouseScrollUp:
		return nil, g.scrollBy(-g.scrollStep, 0)
	case MouseScrollDown:
		return nil, g.scrollBy(g.scrollStep, 0)
	case MouseScrollLeft:
		return nil, g.scrollBy(0, -g.scrollStep)
	case MouseScrollRight:
		return nil, g.scrollBy(0, g.scrollStep)
	}
	return nil, nil
}

var _ Primitive = &GridView{}
