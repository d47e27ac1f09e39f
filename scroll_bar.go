package gridview

import "github.com/gdamore/tcell/v2"

// Orientation is the axis a scroll bar runs along.
type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// ScrollLengths bundles content and viewport lengths in logical units.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines track, arrow, and fractional thumb glyphs for both
// orientations.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ArrowVerticalStart   string
	ArrowVerticalEnd     string
	ArrowHorizontalStart string
	ArrowHorizontalEnd   string

	// Thumbs filling a cell from its bottom or top edge.
	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string
	// Thumbs filling a cell from its left or right edge.
	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the default glyph set: an empty track and
// fractional thumbs.
func MinimalGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// UnicodeGlyphSet returns a glyph set using block elements only.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   BoxDrawingsLightVertical,
		TrackHorizontal: BoxDrawingsLightHorizontal,

		ArrowVerticalStart:   BlackUpPointingTriangle,
		ArrowVerticalEnd:     BlackDownPointingTriangle,
		ArrowHorizontalStart: BlackLeftPointingTriangle,
		ArrowHorizontalEnd:   BlackRightPointingTriangle,

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// ScrollBar renders a scroll position indicator along one axis.
type ScrollBar struct {
	*Box

	orientation Orientation
	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style

	glyphSet GlyphSet
	arrows   ScrollBarArrows
}

// NewScrollBar returns a new scroll bar running along orientation.
func NewScrollBar(orientation Orientation) *ScrollBar {
	s := &ScrollBar{
		Box:         NewBox(),
		orientation: orientation,
		autoHide:    true,
		trackStyle:  tcell.StyleDefault.Dim(true),
		thumbStyle:  tcell.StyleDefault.Foreground(Styles.ScrollBarColor),
		arrowStyle:  tcell.StyleDefault.Dim(true),
		glyphSet:    MinimalGlyphSet(),
		arrows:      ScrollBarArrowsNone,
	}
	s.SetDontClear(true)
	return s
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

// SetOffset sets the logical offset.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetArrows sets which arrow endcaps are rendered.
func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	s.arrows = arrows
	return s
}

// SetAutoHide controls whether the scroll bar is hidden when there is nothing
// to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

func (s *ScrollBar) trackLengthExcludingArrowHeads(length int) int {
	if length <= 0 {
		return 0
	}
	arrows := 0
	if s.arrows.hasStart() {
		arrows++
	}
	if s.arrows.hasEnd() {
		arrows++
	}
	return max(length-arrows, 0)
}

func (s *ScrollBar) viewportLength(length int) int {
	if s.viewportLen > 0 {
		return s.viewportLen
	}
	return max(length, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// metrics computes scroll bar geometry in subcell units.
func (s *ScrollBar) metrics(length int) scrollMetrics {
	trackCells := s.trackLengthExcludingArrowHeads(length)
	return computeScrollMetrics(trackCells, s.contentLen, s.viewportLength(length), s.offset)
}

func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen, thumbStart: 0}
	}

	// Subcell math lets the thumb move in 1/8-cell steps while staying
	// proportional to viewport/content size.
	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func (s *ScrollBar) shouldDraw(length int, m scrollMetrics) bool {
	if length <= 0 || m.trackLen == 0 || s.contentLen <= 0 {
		return false
	}
	if s.autoHide {
		contentLen := max(s.contentLen, 1)
		viewportLen := min(max(s.viewportLength(length), 1), contentLen)
		if contentLen <= viewportLen {
			return false
		}
	}
	return true
}

func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	// Convert absolute subcell coverage into the cell-local [start,len] used
	// by fractional glyph selection.
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphFor(start, fillLen int) (string, tcell.Style) {
	vertical := s.orientation == OrientationVertical
	if fillLen <= 0 {
		if vertical {
			return s.glyphSet.TrackVertical, s.trackStyle
		}
		return s.glyphSet.TrackHorizontal, s.trackStyle
	}
	ix := min(fillLen, subcell) - 1
	switch {
	case vertical && start == 0:
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	case vertical:
		return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
	case start == 0:
		return s.glyphSet.ThumbHorizontalLeft[ix], s.thumbStyle
	default:
		return s.glyphSet.ThumbHorizontalRight[ix], s.thumbStyle
	}
}

func (s *ScrollBar) put(screen tcell.Screen, x, y, index int, glyph string, style tcell.Style) {
	if s.orientation == OrientationVertical {
		setCell(screen, x, y+index, glyph, style)
		return
	}
	setCell(screen, x+index, y, glyph, style)
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	length, startCap, endCap := height, s.glyphSet.ArrowVerticalStart, s.glyphSet.ArrowVerticalEnd
	if s.orientation == OrientationHorizontal {
		length, startCap, endCap = width, s.glyphSet.ArrowHorizontalStart, s.glyphSet.ArrowHorizontalEnd
	}
	if length <= 0 {
		return
	}
	m := s.metrics(length)
	if !s.shouldDraw(length, m) {
		return
	}

	idx := 0
	if s.arrows.hasStart() {
		s.put(screen, x, y, idx, startCap, s.arrowStyle)
		idx++
	}

	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyphFor(start, fillLen)
		s.put(screen, x, y, idx, glyph, style)
		idx++
	}

	if s.arrows.hasEnd() {
		s.put(screen, x, y, idx, endCap, s.arrowStyle)
	}
}

var _ Primitive = &ScrollBar{}
