package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayn2op/gridview/teagrid"
	"github.com/ayn2op/gridview/viewport"
)

// owner keeps the viewport of a controlled grid and feeds every requested
// offset back into it.
type owner struct {
	teagrid.Model
	vp        viewport.Viewport
	requested *viewport.Viewport
}

func (o owner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := o.Model.Update(msg)
	o.Model = next.(teagrid.Model)
	if *o.requested != o.vp {
		o.vp = *o.requested
		o.Model = o.Model.SetViewport(o.vp)
	}
	return o, cmd
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "teagrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rows := flag.Int("rows", 100000, "number of rows")
	cols := flag.Int("cols", 1000, "number of columns")
	cellWidth := flag.Int("cell-width", 12, "column width in cells, 0 to fill the view")
	cellHeight := flag.Int("cell-height", 2, "row height in cells, 0 to fill the view")
	controlled := flag.String("controlled", "", "show a fixed WIDTHxHEIGHT client owned by the demo instead of the window")
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

	even := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	odd := even.Background(lipgloss.Color("236"))
	opts := []teagrid.Option{
		teagrid.WithLogger(logger),
		teagrid.WithStyleFunc(func(x, y int) lipgloss.Style {
			if (x+y)%2 == 1 {
				return odd
			}
			return even
		}),
	}

	var requested *viewport.Viewport
	if *controlled != "" {
		var width, height int
		if _, err := fmt.Sscanf(*controlled, "%dx%d", &width, &height); err != nil {
			return fmt.Errorf("parse -controlled %q: %w", *controlled, err)
		}
		requested = &viewport.Viewport{ClientHeight: height, ClientWidth: width}
		opts = append(opts,
			teagrid.WithViewport(*requested),
			teagrid.WithScrollFunc(func(top, left int) {
				requested.ScrollTop, requested.ScrollLeft = top, left
			}),
		)
	}

	grid := viewport.Grid{RowCount: *rows, ColumnCount: *cols, RowHeight: *cellHeight, ColumnWidth: *cellWidth}
	model, err := teagrid.New(grid, cell, opts...)
	if err != nil {
		return err
	}

	var root tea.Model = model
	if requested != nil {
		root = owner{Model: model, vp: *requested, requested: requested}
	}
	_, err = tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func cell(x, y int, _ viewport.Placement) string {
	return fmt.Sprintf("r%d\nc%d", y, x)
}
