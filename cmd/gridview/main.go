package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/help"
	"github.com/ayn2op/gridview/keybind"
	"github.com/ayn2op/gridview/layers"
	"github.com/ayn2op/gridview/viewport"
)

// keymap adds the application keys to the grid's scroll keys.
type keymap struct {
	gridview.Keymap
	Help keybind.Keybind
	Quit keybind.Keybind
}

func (k keymap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.ScrollUp, k.ScrollDown, k.ScrollLeft, k.ScrollRight, k.Help, k.Quit}
}

func (k keymap) FullHelp() [][]keybind.Keybind {
	return append(k.Keymap.FullHelp(), []keybind.Keybind{k.Help, k.Quit})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rows := flag.Int("rows", 100000, "number of rows")
	cols := flag.Int("cols", 1000, "number of columns")
	cellWidth := flag.Int("cell-width", 12, "column width in cells, 0 to fill the view")
	cellHeight := flag.Int("cell-height", 3, "row height in cells, 0 to fill the view")
	controlled := flag.String("controlled", "", "show a fixed WIDTHxHEIGHT client owned by the demo instead of the view")
	bars := flag.Bool("bars", true, "draw scroll bars")
	logPath := flag.String("log", "", "write viewport traces to this file")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	app := gridview.NewApplication()
	grid := gridview.NewGridView().
		SetShape(*rows, *cols).
		SetCellSize(*cellHeight, *cellWidth).
		SetCellFunc(cell).
		SetScrollBars(*bars).
		SetLogger(logger)
	grid.SetBorders(gridview.BordersAll).SetBorderSet(gridview.BorderSetRound())

	if *controlled != "" {
		var width, height int
		if _, err := fmt.Sscanf(*controlled, "%dx%d", &width, &height); err != nil {
			return fmt.Errorf("parse -controlled %q: %w", *controlled, err)
		}
		// The demo owns the viewport and feeds every requested offset back.
		vp := viewport.Viewport{ClientHeight: height, ClientWidth: width}
		grid.SetViewport(vp).SetScrollFunc(func(top, left int) {
			vp.ScrollTop, vp.ScrollLeft = top, left
			grid.SetViewport(vp)
		})
	}
	grid.SetTitle(" gridview ")
	app.SetScrollFunc(func(top, left int) {
		grid.SetTitle(title(grid))
	})

	keys := keymap{
		Keymap: grid.GetKeymap(),
		Help:   keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "keys")),
		Quit:   keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
	short := help.New().SetKeyMap(keys)
	full := help.New().SetKeyMap(keys).SetShowAll(true)

	root := layers.New().
		AddLayer(grid, layers.WithName("grid"), layers.WithResize(true)).
		AddLayer(short, layers.WithName("help"), layers.WithBottomDock(), layers.WithEnabled(false)).
		AddLayer(full, layers.WithName("keys"), layers.WithBottomDock(), layers.WithOverlay(),
			layers.WithEnabled(false), layers.WithVisible(false))

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case keybind.Matches(event, keys.Quit):
			app.Stop()
			return nil
		case keybind.Matches(event, keys.Help):
			root.ToggleLayer("keys")
			return nil
		}
		return event
	})

	if err := app.SetRoot(root).Run(); err != nil {
		return err
	}
	return grid.Err()
}

func title(g *gridview.GridView) string {
	vp := g.Viewport()
	rows, cols := g.Visible()
	return fmt.Sprintf(" %s  rows %d-%d  cols %d-%d  at %d,%d ",
		g.Mode(), rows.Min, rows.Max, cols.Min, cols.Max, vp.ScrollTop, vp.ScrollLeft)
}

func cell(x, y int, _ viewport.Placement) gridview.Primitive {
	background := tcell.ColorBlack
	if (x+y)%2 == 1 {
		background = tcell.ColorDarkSlateGray
	}
	return gridview.NewTextCell(fmt.Sprintf("r%d c%d", y, x)).
		SetStyle(tcell.StyleDefault.Foreground(gridview.Styles.PrimaryTextColor).Background(background))
}
