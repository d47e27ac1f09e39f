package viewport

import "fmt"

// Range is an inclusive index range. Max < Min denotes an empty range.
type Range struct {
	Min int
	Max int
}

// EmptyRange is returned for an axis whose client size is unknown.
var EmptyRange = Range{Min: 0, Max: -1}

// Empty reports whether the range holds no index.
func (r Range) Empty() bool {
	return r.Max < r.Min
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether index lies within the range.
func (r Range) Contains(index int) bool {
	return index >= r.Min && index <= r.Max
}

// Boundaries computes the inclusive range of items of size itemSize that
// intersect a client area of clientSize starting at scrollOffset. The first
// index is clamped to [0, maxIndex].
//
// itemSize must be positive; unsized axes go through [AxisRange].
func Boundaries(scrollOffset, itemSize, clientSize, maxIndex int) (int, int) {
	if itemSize <= 0 {
		panic(fmt.Sprintf("viewport: Boundaries called with item size %d", itemSize))
	}
	first := min(max(floorDiv(scrollOffset, itemSize), 0), maxIndex)
	last := min(maxIndex, first+ceilDiv(clientSize, itemSize))
	return first, last
}

// AxisRange returns the visible range of one axis, handling an unknown client
// size (empty range) and an unsized axis (the single index 0) before
// delegating to [Boundaries].
func AxisRange(scrollOffset, itemSize, clientSize, count int) Range {
	switch {
	case clientSize == Unknown:
		return EmptyRange
	case itemSize == 0:
		return Range{Min: 0, Max: 0}
	}
	first, last := Boundaries(scrollOffset, itemSize, clientSize, count-1)
	return Range{Min: first, Max: last}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
