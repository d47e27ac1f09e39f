package viewport

// Placement locates an element at an offset relative to the grid origin.
type Placement struct {
	X int
	Y int
	// Positioning marks the element as the containing block for its
	// descendants.
	Positioning bool
}

// Translate returns the placement for the offset (x, y).
func Translate(x, y int, positioning bool) Placement {
	return Placement{X: x, Y: y, Positioning: positioning}
}
