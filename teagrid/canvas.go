package teagrid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/ayn2op/gridview/viewport"
)

// slot is one terminal column of the canvas.
type slot struct {
	// text is the grapheme starting here, or "" for the trailing columns of a
	// wide grapheme.
	text  string
	owner viewport.Key
	owned bool
}

// canvas is a client-sized character buffer cells are painted into. Cells
// partly outside the canvas are clipped, and a wide grapheme that would be
// cut in half is replaced by spaces.
type canvas struct {
	width  int
	height int
	rows   [][]slot
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.rows = make([][]slot, c.height)
	for y := range c.rows {
		c.rows[y] = make([]slot, c.width)
		for x := range c.rows[y] {
			c.rows[y][x].text = " "
		}
	}
	return c
}

// paint draws content into the rectangle at (x0, y0) of the given size and
// marks it as owned by key. Content lines are separated by "\n".
func (c *canvas) paint(key viewport.Key, x0, y0, width, height int, content string) {
	right := min(x0+width, c.width)
	bottom := min(y0+height, c.height)
	for y := max(y0, 0); y < bottom; y++ {
		for x := max(x0, 0); x < right; x++ {
			c.rows[y][x] = slot{text: " ", owner: key, owned: true}
		}
	}

	for i, line := range strings.Split(content, "\n") {
		y := y0 + i
		if y >= bottom {
			break
		}
		if y < 0 {
			continue
		}
		c.write(c.rows[y], x0, right, line)
	}
}

// write places the graphemes of line from column x up to the exclusive
// column limit.
func (c *canvas) write(row []slot, x, limit int, line string) {
	state := -1
	for line != "" && x < limit {
		var cluster string
		var width int
		cluster, line, width, state = uniseg.FirstGraphemeClusterInString(line, state)
		if width == 0 {
			continue
		}
		if x+width > limit {
			return
		}
		if x < 0 {
			// Columns left of the canvas are dropped; a grapheme straddling
			// the edge leaves blanks.
			x += width
			continue
		}
		row[x].text = cluster
		for i := 1; i < width; i++ {
			row[x+i].text = ""
		}
		x += width
	}
}

// render returns the canvas lines, styling each run of columns with the style
// of the cell that owns it.
func (c *canvas) render(style func(key viewport.Key) lipgloss.Style) []string {
	lines := make([]string, c.height)
	for y, row := range c.rows {
		var b strings.Builder
		var run strings.Builder
		var current slot
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current.owned {
				b.WriteString(style(current.owner).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x, s := range row {
			if x == 0 || s.owned != current.owned || s.owner != current.owner {
				flush()
				current = s
			}
			run.WriteString(s.text)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}

// String returns the unstyled canvas.
func (c *canvas) String() string {
	lines := c.render(func(viewport.Key) lipgloss.Style { return lipgloss.NewStyle() })
	return strings.Join(lines, "\n")
}
