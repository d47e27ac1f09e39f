package gridview

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// MouseAction is a logical mouse action derived from the raw button state of
// tcell mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// DoubleClickInterval is the longest pause between two left clicks that still
// makes a double click.
var DoubleClickInterval = 500 * time.Millisecond

var buttonActions = [...]struct {
	button          tcell.ButtonMask
	down, up, click MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick},
}

var wheelActions = [...]struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseTracker remembers the pointer between events so that presses,
// releases, clicks and moves can be told apart.
type mouseTracker struct {
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
	lastClick    time.Time
}

// track returns the actions event stands for, in the order they happened.
func (m *mouseTracker) track(event *tcell.EventMouse, now time.Time) []MouseAction {
	var actions []MouseAction

	x, y := event.Position()
	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
		m.x, m.y = x, y
	}

	pressed := event.Buttons()
	changed := pressed ^ m.buttons
	for _, b := range buttonActions {
		switch {
		case changed&b.button == 0:
		case pressed&b.button != 0:
			actions = append(actions, b.down)
			m.downX, m.downY = x, y
		default:
			actions = append(actions, b.up)
			if x == m.downX && y == m.downY {
				actions = append(actions, m.click(b.button, b.click, now))
			}
		}
	}

	for _, w := range wheelActions {
		if pressed&w.button != 0 {
			actions = append(actions, w.action)
		}
	}
	m.buttons = pressed
	return actions
}

// click turns a second left click within DoubleClickInterval into a double
// click.
func (m *mouseTracker) click(button tcell.ButtonMask, click MouseAction, now time.Time) MouseAction {
	if button != tcell.ButtonPrimary {
		return click
	}
	if !m.lastClick.IsZero() && now.Sub(m.lastClick) <= DoubleClickInterval {
		m.lastClick = time.Time{}
		return MouseLeftDoubleClick
	}
	m.lastClick = now
	return click
}
