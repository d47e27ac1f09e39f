package viewport

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

type scrollCall struct{ top, left int }

func TestEngineUncontrolledLifecycle(t *testing.T) {
	grid := Grid{RowCount: 1000, ColumnCount: 1000, RowHeight: 1, ColumnWidth: 10}
	var calls []scrollCall
	e := NewEngine(grid, UnknownViewport(), WithScrollFunc(func(top, left int) {
		calls = append(calls, scrollCall{top, left})
	}))

	if e.Mode() != Uncontrolled {
		t.Fatalf("mode = %s", e.Mode())
	}

	// Nothing is visible, and nothing scrolls, before the mount measurement.
	e.HandleScroll(5, 5)
	e.PressPointer(3)
	if e.Dragging() {
		t.Fatal("drag started before mount")
	}
	if rows, cols := e.Visible(); !rows.Empty() || !cols.Empty() {
		t.Fatalf("visible before mount = %+v %+v", rows, cols)
	}
	if len(calls) != 0 {
		t.Fatalf("scroll func called before mount: %v", calls)
	}

	if !e.Mount(Viewport{ScrollTop: 0, ScrollLeft: 0, ClientHeight: 20, ClientWidth: 80}) {
		t.Fatal("mount rejected")
	}
	if e.Mount(Viewport{ClientHeight: 1, ClientWidth: 1}) {
		t.Fatal("second mount accepted")
	}

	e.HandleScroll(120, 50)
	if vp := e.Viewport(); vp.ScrollTop != 120 || vp.ScrollLeft != 50 {
		t.Fatalf("after scroll = %+v", vp)
	}
	rows, cols := e.Visible()
	if rows != (Range{120, 140}) || cols != (Range{5, 13}) {
		t.Fatalf("visible = %+v %+v", rows, cols)
	}
	if len(calls) != 1 || calls[0] != (scrollCall{120, 50}) {
		t.Fatalf("scroll calls = %v", calls)
	}
}

func TestEngineDragOwnsHorizontalAxis(t *testing.T) {
	grid := Grid{RowCount: 100, ColumnCount: 100, RowHeight: 1, ColumnWidth: 5}
	e := NewEngine(grid, UnknownViewport())
	e.Mount(Viewport{ScrollTop: 0, ScrollLeft: 50, ClientHeight: 10, ClientWidth: 40})

	e.PressPointer(300)
	if !e.MovePointer(260) {
		t.Fatal("move during drag was not applied")
	}
	if left := e.Viewport().ScrollLeft; left != 10 {
		t.Fatalf("scrollLeft = %d, want 10", left)
	}

	// Native scroll during the drag only moves the vertical axis.
	e.HandleScroll(7, 999)
	if vp := e.Viewport(); vp.ScrollTop != 7 || vp.ScrollLeft != 10 {
		t.Fatalf("native scroll during drag = %+v", vp)
	}

	e.ReleasePointer()
	if e.MovePointer(100) {
		t.Fatal("move after release was applied")
	}
	if left := e.Viewport().ScrollLeft; left != 10 {
		t.Fatalf("scrollLeft changed after release: %d", left)
	}

	e.HandleScroll(7, 999)
	if left := e.Viewport().ScrollLeft; left != 999 {
		t.Fatalf("native scroll after drag = %d, want 999", left)
	}
}

func TestEngineControlledReportsWithoutMutating(t *testing.T) {
	grid := Grid{RowCount: 100, ColumnCount: 100, RowHeight: 1, ColumnWidth: 1}
	supplied := Viewport{ScrollTop: 0, ScrollLeft: 50, ClientHeight: 500, ClientWidth: Unknown}

	var calls []scrollCall
	e := NewEngine(grid, supplied, WithScrollFunc(func(top, left int) {
		calls = append(calls, scrollCall{top, left})
	}))
	if e.Mode() != Controlled {
		t.Fatalf("mode = %s", e.Mode())
	}
	if e.Mount(Viewport{ClientHeight: 1, ClientWidth: 1}) {
		t.Fatal("controlled engine took a measurement")
	}

	e.PressPointer(300)
	e.MovePointer(260)
	if got := e.Viewport(); got != supplied {
		t.Fatalf("controlled viewport mutated: %+v", got)
	}
	if len(calls) != 1 || calls[0] != (scrollCall{0, 10}) {
		t.Fatalf("scroll calls = %v", calls)
	}

	// The owner applies the request on the next cycle.
	supplied.ScrollLeft = 10
	e.SetSupplied(supplied)
	if got := e.Viewport().ScrollLeft; got != 10 {
		t.Fatalf("supplied scrollLeft = %d", got)
	}
	// Unknown client width keeps the columns empty.
	if _, cols := e.Visible(); !cols.Empty() {
		t.Fatalf("cols = %+v, want empty", cols)
	}
}

func TestEngineRender(t *testing.T) {
	e := NewEngine(Grid{RowCount: 3, ColumnCount: 3, RowHeight: 1, ColumnWidth: 1}, UnknownViewport())
	cells, err := Render(e, func(x, y int, p Placement) Key { return Key{x, y} })
	if err != nil || len(cells) != 0 {
		t.Fatalf("render before mount = %d cells, %v", len(cells), err)
	}
	e.Mount(Viewport{ClientHeight: 3, ClientWidth: 3})
	cells, err = Render(e, func(x, y int, p Placement) Key { return Key{x, y} })
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 9 {
		t.Fatalf("render after mount = %d cells, want 9", len(cells))
	}

	e.SetGrid(Grid{RowCount: 1, ColumnCount: 1, RowHeight: 1, ColumnWidth: 1})
	if e.Grid().RowCount != 1 {
		t.Fatal("SetGrid ignored")
	}
}

func TestEngineLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(DefaultGrid(), UnknownViewport(), WithLogger(log.New(&buf, "", 0)))
	e.Mount(Viewport{ClientHeight: 5, ClientWidth: 5})
	e.PressPointer(1)
	e.ReleasePointer()

	out := buf.String()
	for _, want := range []string{"uncontrolled mode", "mounted 5x5", "drag started at 1", "drag ended"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
