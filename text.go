package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// cluster is one grapheme cluster of a string.
type cluster struct {
	text  string
	width int
}

func graphemes(text string) []cluster {
	var clusters []cluster
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, cluster{text: g.Str(), width: g.Width()})
	}
	return clusters
}

// StringWidth returns the number of cells text occupies on screen.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Print draws text on row y between x and x+maxWidth. Text that does not fit
// is cut on the right, or on the left for right-aligned and on both sides for
// centered text. It returns the number of bytes printed and their width.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printLine(screen, text, x, y, maxWidth, alignment, style, false)
}

// PrintOver works like [Print] but keeps the background already on screen.
func PrintOver(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printLine(screen, text, x, y, maxWidth, alignment, style, true)
}

func printLine(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (printed, width int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0
	}
	right := min(x+maxWidth, screenWidth)

	clusters := graphemes(text)
	total := 0
	for _, c := range clusters {
		total += c.width
	}

	var drop int
	switch alignment {
	case AlignmentRight:
		drop = total - maxWidth
	case AlignmentCenter:
		drop = (total - maxWidth) / 2
	}
	for drop > 0 && len(clusters) > 0 {
		drop -= clusters[0].width
		total -= clusters[0].width
		clusters = clusters[1:]
	}
	if total < maxWidth {
		switch alignment {
		case AlignmentRight:
			x += maxWidth - total
		case AlignmentCenter:
			x += (maxWidth - total) / 2
		}
	}

	for _, c := range clusters {
		if x+c.width > right {
			break
		}
		if c.width > 0 {
			cellStyle := style
			if keepBackground {
				_, _, existing, _ := screen.GetContent(x, y)
				_, background, _ := existing.Decompose()
				cellStyle = style.Background(background)
			}
			// The trailing cells of a wide cluster are blanked first so
			// that the cluster itself is written last.
			for i := c.width - 1; i > 0; i-- {
				screen.SetContent(x+i, y, ' ', nil, cellStyle)
			}
			setCell(screen, x, y, c.text, cellStyle)
		}
		x += c.width
		width += c.width
		printed += len(c.text)
	}
	return printed, width
}

// setCell writes one grapheme cluster into a screen cell.
func setCell(screen tcell.Screen, x, y int, cluster string, style tcell.Style) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}

// wrap breaks text into at most maxLines lines no wider than width. Lines
// break at the last opportunity that fits, or inside a word wider than the
// line. Clusters after the last line are never measured.
func wrap(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 || text == "" {
		return nil
	}

	var (
		lines      []string
		start      int
		lineWidth  int
		breakAt    = -1
		breakWidth int
	)
	emit := func(end int) {
		lines = append(lines, strings.TrimRight(text[start:end], " \r\n"))
	}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if len(lines) == maxLines {
			return lines
		}
		from, to := g.Positions()
		w := g.Width()

		if lineWidth+w > width && from > start {
			switch {
			case g.Str() == " ":
				emit(from)
				start, lineWidth, breakAt = to, 0, -1
				continue
			case breakAt > start:
				emit(breakAt)
				start, lineWidth = breakAt, lineWidth-breakWidth
			default:
				emit(from)
				start, lineWidth = from, 0
			}
			breakAt = -1
			if len(lines) == maxLines {
				return lines
			}
		}

		lineWidth += w
		switch g.LineBreak() {
		case uniseg.LineMustBreak:
			if to < len(text) {
				emit(to)
				start, lineWidth, breakAt = to, 0, -1
			}
		case uniseg.LineCanBreak:
			breakAt, breakWidth = to, lineWidth
		}
	}
	if start < len(text) && len(lines) < maxLines {
		emit(len(text))
	}
	return lines
}
