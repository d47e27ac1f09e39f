package viewport

import "strconv"

// Key identifies a visible cell.
type Key struct {
	X int
	Y int
}

// String returns the key in "x,y" form.
func (k Key) String() string {
	return strconv.Itoa(k.X) + "," + strconv.Itoa(k.Y)
}

// Cell is the rendered content of one visible cell.
type Cell[T any] struct {
	Key
	Placement Placement
	Content   T
}

// RenderFunc produces the content of the cell at column x and row y.
type RenderFunc[T any] func(x, y int, p Placement) T

// Visible returns the visible row and column ranges of grid within vp.
func Visible(grid Grid, vp Viewport) (rows, cols Range) {
	rows = AxisRange(vp.ScrollTop, grid.RowHeight, vp.ClientHeight, grid.RowCount)
	cols = AxisRange(vp.ScrollLeft, grid.ColumnWidth, vp.ClientWidth, grid.ColumnCount)
	return rows, cols
}

// Compose renders every visible cell of grid within vp, rows first. The
// result is empty when either axis has no visible index.
func Compose[T any](grid Grid, vp Viewport, render RenderFunc[T]) ([]Cell[T], error) {
	if render == nil {
		return nil, ErrNoRenderer
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	rows, cols := Visible(grid, vp)
	if rows.Empty() || cols.Empty() {
		return nil, nil
	}

	cells := make([]Cell[T], 0, rows.Len()*cols.Len())
	for y := rows.Min; y <= rows.Max; y++ {
		for x := cols.Min; x <= cols.Max; x++ {
			p := Translate(x*grid.ColumnWidth, y*grid.RowHeight, true)
			cells = append(cells, Cell[T]{
				Key:       Key{X: x, Y: y},
				Placement: p,
				Content:   render(x, y, p),
			})
		}
	}
	return cells, nil
}

// Index returns the cells keyed by position.
func Index[T any](cells []Cell[T]) map[Key]T {
	index := make(map[Key]T, len(cells))
	for _, c := range cells {
		index[c.Key] = c.Content
	}
	return index
}
