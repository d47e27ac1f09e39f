package viewport

import (
	"errors"
	"fmt"
)

// Unknown marks a viewport value that has not been measured yet. It is
// distinct from a valid 0.
const Unknown = -1

// Fill is reported by [Grid.ContentSize] for an unsized axis, meaning the
// container should fill the available space.
const Fill = -1

var (
	// ErrInvalidGrid is returned when a grid has a non-positive count or a
	// negative cell size.
	ErrInvalidGrid = errors.New("viewport: invalid grid")
	// ErrNoRenderer is returned when a grid is composed without a cell
	// rendering function.
	ErrNoRenderer = errors.New("viewport: no cell renderer")
)

// Grid is the shape of a uniformly sized grid. A cell size of 0 means the
// axis is unsized and collapses to the single index 0.
type Grid struct {
	RowCount    int
	ColumnCount int
	RowHeight   int
	ColumnWidth int
}

// DefaultGrid returns a one-by-one grid with unsized cells.
func DefaultGrid() Grid {
	return Grid{RowCount: 1, ColumnCount: 1}
}

// Validate reports whether the grid can be windowed.
func (g Grid) Validate() error {
	switch {
	case g.RowCount < 1:
		return fmt.Errorf("%w: row count %d", ErrInvalidGrid, g.RowCount)
	case g.ColumnCount < 1:
		return fmt.Errorf("%w: column count %d", ErrInvalidGrid, g.ColumnCount)
	case g.RowHeight < 0:
		return fmt.Errorf("%w: row height %d", ErrInvalidGrid, g.RowHeight)
	case g.ColumnWidth < 0:
		return fmt.Errorf("%w: column width %d", ErrInvalidGrid, g.ColumnWidth)
	}
	return nil
}

// ContentSize returns the size of the scrollable content. An unsized axis
// reports [Fill].
func (g Grid) ContentSize() (width, height int) {
	width, height = Fill, Fill
	if g.ColumnWidth != 0 {
		width = g.ColumnWidth * g.ColumnCount
	}
	if g.RowHeight != 0 {
		height = g.RowHeight * g.RowCount
	}
	return width, height
}

// Viewport holds the scroll offsets and client dimensions of the visible
// area.
type Viewport struct {
	ScrollTop    int
	ScrollLeft   int
	ClientHeight int
	ClientWidth  int
}

// UnknownViewport returns a viewport with every value set to [Unknown].
func UnknownViewport() Viewport {
	return Viewport{
		ScrollTop:    Unknown,
		ScrollLeft:   Unknown,
		ClientHeight: Unknown,
		ClientWidth:  Unknown,
	}
}

// Controlling reports whether an externally supplied viewport takes
// ownership of the scroll state. One known client dimension is enough.
func (v Viewport) Controlling() bool {
	return v.ClientHeight != Unknown || v.ClientWidth != Unknown
}
