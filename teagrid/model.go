// Package teagrid hosts a virtual grid in a Bubble Tea program.
package teagrid

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayn2op/gridview/viewport"
)

// CellFunc returns the text of the cell at column x and row y. Lines are
// separated by "\n".
type CellFunc func(x, y int, p viewport.Placement) string

// Option configures a Model.
type Option func(*config)

type config struct {
	supplied  viewport.Viewport
	keys      KeyMap
	style     func(x, y int) lipgloss.Style
	status    lipgloss.Style
	step      int
	statusBar bool
	scrolled  func(top, left int)
	logger    *log.Logger
}

// WithViewport makes the model show exactly vp instead of owning its scroll
// state. Scroll requests are then only reported through WithScrollFunc.
func WithViewport(vp viewport.Viewport) Option {
	return func(c *config) {
		c.supplied = vp
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(c *config) {
		c.keys = keys
	}
}

// WithStyle sets the style every cell is rendered with.
func WithStyle(style lipgloss.Style) Option {
	return func(c *config) {
		c.style = func(int, int) lipgloss.Style { return style }
	}
}

// WithStyleFunc sets a per-cell style.
func WithStyleFunc(style func(x, y int) lipgloss.Style) Option {
	return func(c *config) {
		c.style = style
	}
}

// WithStatusBar toggles the status line below the grid.
func WithStatusBar(show bool) Option {
	return func(c *config) {
		c.statusBar = show
	}
}

// WithScrollStep sets the number of rows or columns moved per wheel notch or
// arrow key.
func WithScrollStep(step int) Option {
	return func(c *config) {
		c.step = max(step, 1)
	}
}

// WithScrollFunc sets a handler called with the offsets requested by input.
func WithScrollFunc(handler func(top, left int)) Option {
	return func(c *config) {
		c.scrolled = handler
	}
}

// WithLogger sets the logger tracing viewport transitions.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Model is a Bubble Tea model showing the visible window of a grid. Copies of
// a Model share the same viewport engine.
type Model struct {
	engine *viewport.Engine
	render CellFunc
	config

	width  int
	height int
}

// New returns a model for grid. It fails if render is nil or the grid is
// invalid.
func New(grid viewport.Grid, render CellFunc, opts ...Option) (Model, error) {
	if render == nil {
		return Model{}, viewport.ErrNoRenderer
	}
	if err := grid.Validate(); err != nil {
		return Model{}, err
	}

	cfg := config{
		supplied:  viewport.UnknownViewport(),
		keys:      DefaultKeyMap(),
		style:     func(int, int) lipgloss.Style { return lipgloss.NewStyle() },
		status:    lipgloss.NewStyle().Faint(true),
		step:      1,
		statusBar: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	engineOpts := []viewport.Option{viewport.WithScrollFunc(func(top, left int) {
		if cfg.scrolled != nil {
			cfg.scrolled(top, left)
		}
	})}
	if cfg.logger != nil {
		engineOpts = append(engineOpts, viewport.WithLogger(cfg.logger))
	}

	return Model{
		engine: viewport.NewEngine(grid, cfg.supplied, engineOpts...),
		render: render,
		config: cfg,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Viewport returns the viewport of the current cycle.
func (m Model) Viewport() viewport.Viewport {
	return m.engine.Viewport()
}

// Mode returns who owns the scroll state.
func (m Model) Mode() viewport.Mode {
	return m.engine.Mode()
}

// Dragging reports whether a pointer drag is in progress.
func (m Model) Dragging() bool {
	return m.engine.Dragging()
}

// SetViewport supplies the viewport for the next cycle of a controlled model.
func (m Model) SetViewport(vp viewport.Viewport) Model {
	m.engine.SetSupplied(vp)
	return m
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		height := m.clientHeight()
		if m.engine.Mode() == viewport.Uncontrolled {
			if !m.engine.Mount(viewport.Viewport{ClientHeight: height, ClientWidth: msg.Width}) {
				m.engine.Resize(height, msg.Width)
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	return m, nil
}

func (m Model) clientHeight() int {
	if m.statusBar {
		return max(m.height-1, 0)
	}
	return m.height
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.engine.PressPointer(msg.X)
		case tea.MouseButtonWheelUp:
			m.scrollBy(-m.step, 0)
		case tea.MouseButtonWheelDown:
			m.scrollBy(m.step, 0)
		case tea.MouseButtonWheelLeft:
			m.scrollBy(0, -m.step)
		case tea.MouseButtonWheelRight:
			m.scrollBy(0, m.step)
		}
	case tea.MouseActionMotion:
		m.engine.MovePointer(msg.X)
	case tea.MouseActionRelease:
		m.engine.ReleasePointer()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) {
	vp := m.engine.Viewport()
	page := max(vp.ClientHeight, 1)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-m.step, 0)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(m.step, 0)
	case key.Matches(msg, m.keys.Left):
		m.scrollBy(0, -m.step)
	case key.Matches(msg, m.keys.Right):
		m.scrollBy(0, m.step)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(vp.ScrollTop-page, vp.ScrollLeft)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(max(vp.ScrollTop, 0)+page, vp.ScrollLeft)
	case key.Matches(msg, m.keys.Home):
		m.scrollTo(0, 0)
	case key.Matches(msg, m.keys.End):
		top, _ := m.maxScroll(vp)
		m.scrollTo(top, vp.ScrollLeft)
	}
}

// maxScroll returns the largest offsets a native scroll may reach.
func (m Model) maxScroll(vp viewport.Viewport) (top, left int) {
	width, height := m.engine.Grid().ContentSize()
	if height != viewport.Fill && vp.ClientHeight != viewport.Unknown {
		top = max(height-vp.ClientHeight, 0)
	}
	if width != viewport.Fill && vp.ClientWidth != viewport.Unknown {
		left = max(width-vp.ClientWidth, 0)
	}
	return top, left
}

func (m Model) scrollTo(top, left int) {
	vp := m.engine.Viewport()
	maxTop, maxLeft := m.maxScroll(vp)
	top = min(max(top, 0), maxTop)
	left = min(max(left, 0), maxLeft)
	if top != vp.ScrollTop || left != vp.ScrollLeft {
		m.engine.HandleScroll(top, left)
	}
}

func (m Model) scrollBy(rows, columns int) {
	vp := m.engine.Viewport()
	grid := m.engine.Grid()
	top := max(vp.ScrollTop, 0) + rows*max(grid.RowHeight, 1)
	left := max(vp.ScrollLeft, 0) + columns*max(grid.ColumnWidth, 1)
	m.scrollTo(top, left)
}

// View implements tea.Model.
func (m Model) View() string {
	vp := m.engine.Viewport()
	width, height := vp.ClientWidth, vp.ClientHeight
	if width < 0 || height < 0 {
		return ""
	}

	cells, err := viewport.Render(m.engine, viewport.RenderFunc[string](m.render))
	if err != nil {
		return fmt.Sprintf("teagrid: %v", err)
	}

	grid := m.engine.Grid()
	offsetX, offsetY := max(vp.ScrollLeft, 0), max(vp.ScrollTop, 0)
	cellWidth, cellHeight := grid.ColumnWidth, grid.RowHeight
	if cellWidth == 0 {
		cellWidth, offsetX = width, 0
	}
	if cellHeight == 0 {
		cellHeight, offsetY = height, 0
	}

	c := newCanvas(width, height)
	for _, cell := range cells {
		c.paint(cell.Key, cell.Placement.X-offsetX, cell.Placement.Y-offsetY, cellWidth, cellHeight, cell.Content)
	}
	lines := c.render(func(k viewport.Key) lipgloss.Style {
		return m.style(k.X, k.Y)
	})

	if m.statusBar && m.width > 0 {
		lines = append(lines, m.status.MaxWidth(m.width).Render(m.statusLine(vp)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusLine(vp viewport.Viewport) string {
	rows, cols := m.engine.Visible()
	var help []string
	for _, b := range m.keys.ShortHelp() {
		if b.Enabled() {
			help = append(help, b.Help().Key+" "+b.Help().Desc)
		}
	}
	return fmt.Sprintf("rows %d-%d  cols %d-%d  at %d,%d  %s",
		rows.Min, rows.Max, cols.Min, cols.Max, vp.ScrollTop, vp.ScrollLeft, strings.Join(help, " • "))
}

var _ tea.Model = Model{}
