package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TextCell is a primitive showing a piece of text, typically returned from a
// [CellFunc].
type TextCell struct {
	*Box

	text      string
	style     tcell.Style
	alignment Alignment
	wrap      bool
}

// NewTextCell returns a left-aligned, wrapping text cell.
func NewTextCell(text string) *TextCell {
	return &TextCell{
		Box:   NewBox(),
		text:  text,
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		wrap:  true,
	}
}

// SetText sets the cell text.
func (c *TextCell) SetText(text string) *TextCell {
	c.text = text
	return c
}

// GetText returns the cell text.
func (c *TextCell) GetText() string {
	return c.text
}

// SetStyle sets the text style. The background of the style also fills the
// cell.
func (c *TextCell) SetStyle(style tcell.Style) *TextCell {
	c.style = style
	_, bg, _ := style.Decompose()
	c.SetBackgroundColor(bg)
	return c
}

// SetAlignment sets the horizontal alignment of each line.
func (c *TextCell) SetAlignment(alignment Alignment) *TextCell {
	c.alignment = alignment
	return c
}

// SetWrap toggles word wrapping. Without it, each line of the text is cut at
// the cell's right edge.
func (c *TextCell) SetWrap(wrap bool) *TextCell {
	c.wrap = wrap
	return c
}

// Draw draws this primitive onto the screen.
func (c *TextCell) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 || c.text == "" {
		return
	}

	var lines []string
	if c.wrap {
		lines = wrap(c.text, width, height)
	} else {
		lines = strings.SplitN(c.text, "\n", height+1)
	}
	for i := 0; i < len(lines) && i < height; i++ {
		Print(screen, lines[i], x, y+i, width, c.alignment, c.style)
	}
}

var _ Primitive = &TextCell{}
