package viewport

// Session is a pointer drag in progress.
type Session struct {
	Active           bool
	AnchorPointerX   int
	AnchorScrollLeft int
}

// Drag translates pointer press, move and release into horizontal scroll
// offsets. The zero value is idle.
type Drag struct {
	session Session
}

// Press starts a session anchored at the pointer position and the current
// horizontal offset. A press during a session re-anchors it.
func (d *Drag) Press(pointerX, scrollLeft int) {
	d.session = Session{
		Active:           true,
		AnchorPointerX:   pointerX,
		AnchorScrollLeft: scrollLeft,
	}
}

// Move returns the horizontal offset for the pointer position. ok is false
// when no session is active.
func (d *Drag) Move(pointerX int) (scrollLeft int, ok bool) {
	if !d.session.Active {
		return 0, false
	}
	return (pointerX - d.session.AnchorPointerX) + d.session.AnchorScrollLeft, true
}

// Release ends the session and reports whether one was active.
func (d *Drag) Release() bool {
	active := d.session.Active
	d.session = Session{}
	return active
}

// Active reports whether a session is in progress.
func (d *Drag) Active() bool {
	return d.session.Active
}

// Session returns a copy of the current session.
func (d *Drag) Session() Session {
	return d.session
}
