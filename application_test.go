package gridview

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// recorder is a primitive remembering the mouse actions it receives.
type recorder struct {
	*Box
	actions []MouseAction
	capture bool
	command Command
}

func newRecorder() *recorder {
	return &recorder{Box: NewBox()}
}

func (r *recorder) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	r.actions = append(r.actions, action)
	if r.capture {
		return r, r.command
	}
	return nil, r.command
}

func TestMouseTracker(t *testing.T) {
	type step struct {
		x, y    int
		buttons tcell.ButtonMask
		after   time.Duration
		want    []MouseAction
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"click", []step{
			{3, 2, tcell.ButtonPrimary, 0, []MouseAction{MouseMove, MouseLeftDown}},
			{3, 2, tcell.ButtonNone, 0, []MouseAction{MouseLeftUp, MouseLeftClick}},
		}},
		{"double click", []step{
			{0, 0, tcell.ButtonPrimary, 0, []MouseAction{MouseLeftDown}},
			{0, 0, tcell.ButtonNone, 0, []MouseAction{MouseLeftUp, MouseLeftClick}},
			{0, 0, tcell.ButtonPrimary, 0, []MouseAction{MouseLeftDown}},
			{0, 0, tcell.ButtonNone, 0, []MouseAction{MouseLeftUp, MouseLeftDoubleClick}},
		}},
		{"slow second click", []step{
			{0, 0, tcell.ButtonPrimary, 0, []MouseAction{MouseLeftDown}},
			{0, 0, tcell.ButtonNone, 0, []MouseAction{MouseLeftUp, MouseLeftClick}},
			{0, 0, tcell.ButtonPrimary, time.Second, []MouseAction{MouseLeftDown}},
			{0, 0, tcell.ButtonNone, 0, []MouseAction{MouseLeftUp, MouseLeftClick}},
		}},
		{"drag is not a click", []step{
			{1, 1, tcell.ButtonPrimary, 0, []MouseAction{MouseMove, MouseLeftDown}},
			{4, 1, tcell.ButtonPrimary, 0, []MouseAction{MouseMove}},
			{4, 1, tcell.ButtonNone, 0, []MouseAction{MouseLeftUp}},
		}},
		{"right click", []step{
			{0, 0, tcell.ButtonSecondary, 0, []MouseAction{MouseRightDown}},
			{0, 0, tcell.ButtonNone, 0, []MouseAction{MouseRightUp, MouseRightClick}},
		}},
		{"wheel", []step{
			{0, 0, tcell.WheelDown, 0, []MouseAction{MouseScrollDown}},
			{0, 0, tcell.WheelLeft, 0, []MouseAction{MouseScrollLeft}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m mouseTracker
			now := time.Unix(0, 0)
			for i, s := range tt.steps {
				now = now.Add(s.after)
				got := m.track(tcell.NewEventMouse(s.x, s.y, s.buttons, tcell.ModNone), now)
				if !slices.Equal(got, s.want) {
					t.Fatalf("step %d: actions = %v, want %v", i, got, s.want)
				}
			}
		})
	}
}

func TestHandleMouseDispatchesToRoot(t *testing.T) {
	root := newRecorder()
	root.command = RedrawCommand{}
	app := NewApplication().SetRoot(root)

	if !app.handleMouse(tcell.NewEventMouse(3, 2, tcell.ButtonPrimary, tcell.ModNone), time.Now()) {
		t.Fatal("a redraw command should request a redraw")
	}
	if !slices.Equal(root.actions, []MouseAction{MouseMove, MouseLeftDown}) {
		t.Fatalf("actions = %v", root.actions)
	}
}

func TestMouseCapture(t *testing.T) {
	root := newRecorder()
	captor := newRecorder()
	captor.capture = true
	app := NewApplication().SetRoot(root)
	app.capture = captor

	app.handleMouse(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone), time.Now())
	if len(root.actions) != 0 {
		t.Fatalf("root received %v while another primitive captured the mouse", root.actions)
	}
	if !slices.Equal(captor.actions, []MouseAction{MouseMove}) {
		t.Fatalf("captor actions = %v, want [MouseMove]", captor.actions)
	}
	if app.capture != captor {
		t.Fatal("capture was released")
	}

	// The rest of the event follows the captor after it lets go.
	captor.capture = false
	app.handleMouse(tcell.NewEventMouse(6, 5, tcell.ButtonPrimary, tcell.ModNone), time.Now())
	if !slices.Equal(captor.actions, []MouseAction{MouseMove, MouseMove, MouseLeftDown}) {
		t.Fatalf("captor actions = %v", captor.actions)
	}
	if len(root.actions) != 0 || app.capture != nil {
		t.Fatalf("root actions = %v, capture = %v", root.actions, app.capture)
	}
}

func TestExecuteCommand(t *testing.T) {
	var scrolls [][2]int
	app := NewApplication().SetScrollFunc(func(top, left int) {
		scrolls = append(scrolls, [2]int{top, left})
	})

	tests := []struct {
		name string
		cmd  Command
		want bool
	}{
		{"nil", nil, false},
		{"redraw", RedrawCommand{}, true},
		{"consume", ConsumeEventCommand{}, false},
		{"scroll", ScrollCommand{Top: 4, Left: 2}, true},
		{"batch", BatchCommand{ConsumeEventCommand{}, RedrawCommand{}}, true},
		{"empty focus", SetFocusCommand{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.executeCommand(tt.cmd); got != tt.want {
				t.Fatalf("executeCommand() = %v, want %v", got, tt.want)
			}
		})
	}
	if !slices.Equal(scrolls, [][2]int{{4, 2}}) {
		t.Fatalf("scrolls = %v, want [[4 2]]", scrolls)
	}
}

func TestSetFocusCommand(t *testing.T) {
	first, second := NewBox(), NewBox()
	app := NewApplication().SetRoot(first)

	if !app.executeCommand(SetFocusCommand{Target: second}) {
		t.Fatal("focus change should redraw")
	}
	if app.GetFocus() != second || first.HasFocus() || !second.HasFocus() {
		t.Fatal("focus did not move to the target")
	}
	if app.executeCommand(SetFocusCommand{Target: second}) {
		t.Fatal("refocusing the same primitive should not redraw")
	}
}

func TestAppendCommand(t *testing.T) {
	got := AppendCommand(BatchCommand{RedrawCommand{}}, BatchCommand{QuitCommand{}, ConsumeEventCommand{}})
	batch, ok := got.(BatchCommand)
	if !ok || len(batch) != 3 {
		t.Fatalf("AppendCommand() = %#v, want a flat batch of 3", got)
	}
	if AppendCommand(nil, RedrawCommand{}) != (RedrawCommand{}) {
		t.Fatal("appending to nil should return next")
	}
}

func TestRunUntilStopped(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	app := NewApplication().SetScreen(screen).SetRoot(NewTextCell("hi"))
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	var drawn rune
	app.QueueUpdate(func() {
		drawn, _, _, _ = screen.GetContent(0, 0)
	})
	if drawn != 'h' {
		t.Fatalf("first cell = %q, want 'h'", drawn)
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
