package viewport

// Mode tells who owns the scroll offsets and client dimensions.
type Mode int

const (
	// Controlled means the owner supplies the viewport every cycle.
	Controlled Mode = iota
	// Uncontrolled means the state keeps its own mirrored copy, seeded by a
	// one-time measurement.
	Uncontrolled
)

func (m Mode) String() string {
	switch m {
	case Controlled:
		return "controlled"
	case Uncontrolled:
		return "uncontrolled"
	}
	return "unknown"
}

// ownership is the tagged variant behind State.
type ownership interface {
	mode() Mode
	resolve(supplied Viewport) Viewport
}

type controlled struct{}

func (controlled) mode() Mode { return Controlled }

func (controlled) resolve(supplied Viewport) Viewport { return supplied }

type uncontrolled struct {
	mirror   Viewport
	measured bool
}

func (*uncontrolled) mode() Mode { return Uncontrolled }

func (u *uncontrolled) resolve(Viewport) Viewport { return u.mirror }

// State owns the viewport in one of two ownership modes. The mode is picked
// once by [NewState] and never changes.
type State struct {
	owner ownership
}

// NewState decides the ownership mode from the supplied viewport: any known
// client dimension selects [Controlled].
func NewState(supplied Viewport) *State {
	if supplied.Controlling() {
		return &State{owner: controlled{}}
	}
	return &State{owner: &uncontrolled{mirror: UnknownViewport()}}
}

// Mode returns the ownership mode.
func (s *State) Mode() Mode {
	return s.owner.mode()
}

// Resolve returns the viewport for the current cycle: the supplied one in
// controlled mode, the mirrored copy otherwise.
func (s *State) Resolve(supplied Viewport) Viewport {
	return s.owner.resolve(supplied)
}

// Measure applies the first measured geometry. It only takes effect once, in
// uncontrolled mode, and reports whether it did.
func (s *State) Measure(measured Viewport) bool {
	u, ok := s.owner.(*uncontrolled)
	if !ok || u.measured {
		return false
	}
	u.mirror = measured
	u.measured = true
	return true
}

// Measured reports whether the mirrored copy holds measured values. It is
// always false in controlled mode.
func (s *State) Measured() bool {
	u, ok := s.owner.(*uncontrolled)
	return ok && u.measured
}

func (s *State) mirror() *Viewport {
	u, ok := s.owner.(*uncontrolled)
	if !ok || !u.measured {
		return nil
	}
	return &u.mirror
}

// Scroll copies both reported offsets verbatim.
func (s *State) Scroll(top, left int) bool {
	m := s.mirror()
	if m == nil {
		return false
	}
	m.ScrollTop, m.ScrollLeft = top, left
	return true
}

// ScrollTop copies the reported vertical offset verbatim.
func (s *State) ScrollTop(top int) bool {
	m := s.mirror()
	if m == nil {
		return false
	}
	m.ScrollTop = top
	return true
}

// ScrollLeft copies the reported horizontal offset verbatim.
func (s *State) ScrollLeft(left int) bool {
	m := s.mirror()
	if m == nil {
		return false
	}
	m.ScrollLeft = left
	return true
}

// Resize updates the mirrored client dimensions after the host re-laid out
// the viewport.
func (s *State) Resize(height, width int) bool {
	m := s.mirror()
	if m == nil || (m.ClientHeight == height && m.ClientWidth == width) {
		return false
	}
	m.ClientHeight, m.ClientWidth = height, width
	return true
}

// RootPlacement returns the placement of the viewport root. Only an
// uncontrolled viewport establishes its own positioning context.
func (s *State) RootPlacement() Placement {
	if s.Mode() == Uncontrolled {
		return Translate(0, 0, true)
	}
	return Placement{}
}
