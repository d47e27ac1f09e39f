// Package help draws the keybinds of a key map as a one-line summary or as
// aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each group is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*gridview.Box
	Styles Styles

	keyMap    KeyMap
	showAll   bool
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       gridview.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMap sets the key map shown by this primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll switches between the short and the full help.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether the full help is shown.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetSeparator sets the separator placed between items and columns.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetEllipsis sets the marker appended when items do not fit.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Height returns the number of lines the help needs.
func (h *Help) Height() int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	rows := 0
	for _, group := range h.keyMap.FullHelp() {
		rows = max(rows, len(enabled(group)))
	}
	return rows
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines [][]segment
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = [][]segment{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		drawSegments(screen, x, y+row, width, lines[row])
	}
}

// String returns the short help as plain text.
func (h *Help) String() string {
	if h.keyMap == nil {
		return ""
	}
	return plain(h.shortLine(h.keyMap.ShortHelp(), 0))
}

type segment struct {
	text  string
	style tcell.Style
}

// shortLine joins items until the next one would exceed maxWidth. A
// maxWidth of 0 means no limit.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) []segment {
	sep := segment{text: h.separator, style: h.Styles.SeparatorStyle}

	var line []segment
	for _, kb := range enabled(bindings) {
		item := h.item(kb)
		next := item
		if len(line) > 0 {
			next = append([]segment{sep}, item...)
		}
		if maxWidth > 0 && width(line)+width(next) > maxWidth {
			return append(line, h.tail(line, maxWidth)...)
		}
		line = append(line, next...)
	}
	return line
}

// fullLines lays out groups as columns, dropping columns that do not fit.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) [][]segment {
	type column struct {
		binds []keybind.Keybind
		keyW  int
		w     int
	}

	var columns []column
	total := 0
	truncated := false
	for _, group := range groups {
		c := column{binds: enabled(group)}
		if len(c.binds) == 0 {
			continue
		}
		for _, kb := range c.binds {
			c.keyW = max(c.keyW, gridview.StringWidth(kb.Help().Key))
		}
		for _, kb := range c.binds {
			c.w = max(c.w, c.keyW+1+gridview.StringWidth(kb.Help().Desc))
		}
		w := c.w
		if len(columns) > 0 {
			w += gridview.StringWidth(h.separator)
		}
		if maxWidth > 0 && total+w > maxWidth {
			truncated = true
			break
		}
		total += w
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		if truncated {
			return [][]segment{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
		}
		return nil
	}

	rows := 0
	for _, c := range columns {
		rows = max(rows, len(c.binds))
	}
	lines := make([][]segment, rows)
	for row := range lines {
		for i, c := range columns {
			if i > 0 {
				lines[row] = append(lines[row], segment{text: h.separator, style: h.Styles.SeparatorStyle})
			}
			var cell []segment
			if row < len(c.binds) {
				hp := c.binds[row].Help()
				cell = []segment{
					{text: pad(hp.Key, c.keyW), style: h.Styles.KeyStyle},
					{text: " " + hp.Desc, style: h.Styles.DescStyle},
				}
			}
			if i < len(columns)-1 {
				cell = append(cell, segment{text: strings.Repeat(" ", c.w-width(cell)), style: h.Styles.DescStyle})
			}
			lines[row] = append(lines[row], cell...)
		}
	}
	if truncated {
		lines[0] = append(lines[0], h.tail(lines[0], maxWidth)...)
	}
	return lines
}

func (h *Help) item(kb keybind.Keybind) []segment {
	hp := kb.Help()
	switch {
	case hp.Key == "":
		return []segment{{text: hp.Desc, style: h.Styles.DescStyle}}
	case hp.Desc == "":
		return []segment{{text: hp.Key, style: h.Styles.KeyStyle}}
	}
	return []segment{{text: hp.Key, style: h.Styles.KeyStyle}, {text: " " + hp.Desc, style: h.Styles.DescStyle}}
}

// tail returns the ellipsis if it fits after line, or nothing.
func (h *Help) tail(line []segment, maxWidth int) []segment {
	tail := []segment{{text: " " + h.ellipsis, style: h.Styles.EllipsisStyle}}
	if h.ellipsis == "" || width(line)+width(tail) > maxWidth {
		return nil
	}
	return tail
}

func drawSegments(screen tcell.Screen, x, y, maxWidth int, segments []segment) {
	for _, s := range segments {
		if maxWidth <= 0 {
			return
		}
		_, printed := gridview.Print(screen, s.text, x, y, maxWidth, gridview.AlignmentLeft, s.style)
		x += printed
		maxWidth -= printed
	}
}

// enabled returns the keybinds with something to show.
func enabled(bindings []keybind.Keybind) []keybind.Keybind {
	out := make([]keybind.Keybind, 0, len(bindings))
	for _, kb := range bindings {
		if hp := kb.Help(); kb.Enabled() && (hp.Key != "" || hp.Desc != "") {
			out = append(out, kb)
		}
	}
	return out
}

func width(segments []segment) int {
	w := 0
	for _, s := range segments {
		w += gridview.StringWidth(s.text)
	}
	return w
}

func pad(text string, w int) string {
	return text + strings.Repeat(" ", max(w-gridview.StringWidth(text), 0))
}

func plain(segments []segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}
