package teagrid

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayn2op/gridview/viewport"
)

func label(x, y int, _ viewport.Placement) string {
	return strconv.Itoa(x) + strconv.Itoa(y)
}

var testGrid = viewport.Grid{RowCount: 10, ColumnCount: 10, RowHeight: 1, ColumnWidth: 3}

func newModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	m, err := New(testGrid, label, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func viewLines(m Model) []string {
	return strings.Split(m.View(), "\n")
}

func TestNewErrors(t *testing.T) {
	if _, err := New(testGrid, nil); !errors.Is(err, viewport.ErrNoRenderer) {
		t.Fatalf("New(nil render) error = %v, want ErrNoRenderer", err)
	}
	if _, err := New(viewport.Grid{RowCount: 0, ColumnCount: 1}, label); !errors.Is(err, viewport.ErrInvalidGrid) {
		t.Fatalf("New(invalid grid) error = %v, want ErrInvalidGrid", err)
	}
}

func TestWindowSizeMounts(t *testing.T) {
	m := newModel(t)
	if m.View() != "" {
		t.Fatal("an unmeasured model should render nothing")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 9, Height: 5})
	want := viewport.Viewport{ClientHeight: 4, ClientWidth: 9}
	if got := m.Viewport(); got != want {
		t.Fatalf("Viewport() = %+v, want %+v", got, want)
	}
	lines := viewLines(m)
	if len(lines) != 5 {
		t.Fatalf("View() has %d lines, want 4 rows and a status line", len(lines))
	}
	if lines[0] != "00 10 20 " || lines[3] != "03 13 23 " {
		t.Fatalf("View() rows = %q", lines[:4])
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 3})
	if got := m.Viewport(); got.ClientHeight != 2 || got.ClientWidth != 12 {
		t.Fatalf("Viewport() after resize = %+v", got)
	}
}

func TestMouseDrag(t *testing.T) {
	m := newModel(t, WithStatusBar(false))

	// Input before the first measurement is dropped.
	m = update(t, m, tea.MouseMsg{X: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Dragging() {
		t.Fatal("drag started before mount")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 9, Height: 4})
	m = update(t, m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.Viewport().ScrollLeft; got != 3 {
		t.Fatalf("ScrollLeft = %d, want 3", got)
	}
	m = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionRelease})
	m = update(t, m, tea.MouseMsg{X: 8, Y: 3, Action: tea.MouseActionMotion})
	if got := m.Viewport().ScrollLeft; got != 3 {
		t.Fatalf("ScrollLeft after release = %d, want 3", got)
	}
	if lines := viewLines(m); lines[0] != "10 20 30 " {
		t.Fatalf("row 0 = %q", lines[0])
	}
}

func TestKeysAndWheel(t *testing.T) {
	m := newModel(t, WithScrollStep(2))
	m = update(t, m, tea.WindowSizeMsg{Width: 9, Height: 5})

	runes := func(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
	tests := []struct {
		name      string
		msg       tea.Msg
		top, left int
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 2, 0},
		{"end", runes('G'), 6, 0},
		{"wheel down clamps", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, 6, 0},
		{"right", runes('l'), 6, 6},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, 2, 6},
		{"wheel left", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelLeft}, 2, 0},
		{"home", runes('g'), 0, 0},
	}
	for _, tt := range tests {
		m = update(t, m, tt.msg)
		if vp := m.Viewport(); vp.ScrollTop != tt.top || vp.ScrollLeft != tt.left {
			t.Fatalf("%s: viewport = %+v, want top %d left %d", tt.name, vp, tt.top, tt.left)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

func TestControlled(t *testing.T) {
	var scrolls [][2]int
	m := newModel(t,
		WithStatusBar(false),
		WithViewport(viewport.Viewport{ScrollTop: 2, ScrollLeft: 3, ClientHeight: 2, ClientWidth: 6}),
		WithScrollFunc(func(top, left int) { scrolls = append(scrolls, [2]int{top, left}) }),
	)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.Mode() != viewport.Controlled {
		t.Fatalf("Mode() = %v, want controlled", m.Mode())
	}
	if got := m.Viewport().ClientWidth; got != 6 {
		t.Fatalf("window size overrode the supplied viewport: width %d", got)
	}

	lines := viewLines(m)
	if len(lines) != 2 || lines[0] != "12 22 " {
		t.Fatalf("View() = %q", lines)
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if len(scrolls) != 1 || scrolls[0] != [2]int{3, 3} {
		t.Fatalf("scrolls = %v, want [[3 3]]", scrolls)
	}
	if got := m.Viewport().ScrollTop; got != 2 {
		t.Fatalf("controlled model scrolled itself to %d", got)
	}

	m = m.SetViewport(viewport.Viewport{ScrollTop: 3, ScrollLeft: 3, ClientHeight: 2, ClientWidth: 6})
	if lines := viewLines(m); lines[0] != "13 23 " {
		t.Fatalf("row 0 after owner update = %q", lines[0])
	}
}

func TestControlledUnknownWidth(t *testing.T) {
	var scrolls [][2]int
	m := newModel(t,
		WithViewport(viewport.Viewport{ClientHeight: 2, ClientWidth: viewport.Unknown}),
		WithScrollFunc(func(top, left int) { scrolls = append(scrolls, [2]int{top, left}) }),
	)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if len(scrolls) != 1 || scrolls[0] != [2]int{8, 0} {
		t.Fatalf("scrolls = %v, want [[8 0]]", scrolls)
	}
}
