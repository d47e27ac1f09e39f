package gridview

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Size of the event and update queues.
const queueSize = 100

// Application owns the screen. It routes key and mouse events to the root
// primitive and executes the commands the primitives answer with.
//
//	if err := gridview.NewApplication().SetRoot(grid).Run(); err != nil {
//	    log.Fatal(err)
//	}
type Application struct {
	mu sync.RWMutex

	screen      tcell.Screen
	root        Primitive
	focus       Primitive
	forceRedraw bool

	events  chan tcell.Event
	updates chan func()

	inputCapture func(event *tcell.EventKey) *tcell.EventKey
	scrolled     func(top, left int)

	mouse mouseTracker
	// Primitive receiving every mouse action until it stops capturing.
	capture Primitive
}

// NewApplication returns an application without a screen. Run creates one
// unless SetScreen supplied it.
func NewApplication() *Application {
	return &Application{
		events:  make(chan tcell.Event, queueSize),
		updates: make(chan func(), queueSize),
	}
}

// SetScreen sets the screen Run draws on. It has no effect once a screen is
// set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetInputCapture sets a function seeing every key event before the root
// primitive. Returning nil consumes the event; the screen is redrawn anyway.
func (a *Application) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) *Application {
	a.inputCapture = capture
	return a
}

// SetScrollFunc sets a handler called for every executed ScrollCommand.
func (a *Application) SetScrollFunc(handler func(top, left int)) *Application {
	a.scrolled = handler
	return a
}

// Run initializes the screen and processes events until Stop is called or
// the screen reports an error.
func (a *Application) Run() error {
	screen, err := a.initScreen()
	if err != nil {
		return err
	}

	// A panic would leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.poll(screen)
	}()
	err = a.loop()
	wg.Wait()
	return err
}

func (a *Application) initScreen() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		a.screen = screen
	}
	if err := a.screen.Init(); err != nil {
		return nil, err
	}
	a.screen.EnableMouse()
	return a.screen, nil
}

// poll forwards screen events to the loop. PollEvent returns nil once the
// screen is finalized, which ends the loop.
func (a *Application) poll(screen tcell.Screen) {
	for {
		event := screen.PollEvent()
		a.events <- event
		if event == nil {
			return
		}
	}
}

func (a *Application) loop() error {
	var loopErr error
	for {
		select {
		case event := <-a.events:
			if event == nil {
				return loopErr
			}
			redraw, err := a.handleEvent(event)
			if err != nil {
				loopErr = err
				a.Stop()
				continue
			}
			if redraw {
				a.draw()
			}
		case update := <-a.updates:
			update()
		}
	}
}

// handleEvent reports whether event requires a redraw.
func (a *Application) handleEvent(event tcell.Event) (bool, error) {
	switch event := event.(type) {
	case *tcell.EventKey:
		return a.handleKey(event), nil
	case *tcell.EventMouse:
		return a.handleMouse(event, time.Now()), nil
	case *tcell.EventResize:
		a.mu.Lock()
		a.forceRedraw = true
		a.mu.Unlock()
		return true, nil
	case *tcell.EventError:
		return false, event
	}
	return false, nil
}

func (a *Application) handleKey(event *tcell.EventKey) bool {
	if a.inputCapture != nil {
		if event = a.inputCapture(event); event == nil {
			return true
		}
	}

	root := a.getRoot()
	if root == nil || !root.HasFocus() {
		return false
	}
	return a.executeCommand(root.InputHandler(event))
}

// handleMouse dispatches the actions derived from event. Once a primitive
// captures an action, the remaining actions of the same event go to it even
// if it releases the capture.
func (a *Application) handleMouse(event *tcell.EventMouse, now time.Time) bool {
	var (
		target Primitive
		redraw bool
	)
	for _, action := range a.mouse.track(event, now) {
		switch {
		case a.capture != nil:
			target = a.capture
		case target == nil:
			target = a.getRoot()
		}
		if target == nil {
			continue
		}
		capture, cmd := target.MouseHandler(action, event)
		a.capture = capture
		if a.executeCommand(cmd) {
			redraw = true
		}
	}
	return redraw
}

func (a *Application) getRoot() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.root
}

// Stop finalizes the screen, which makes Run return.
func (a *Application) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw redraws the screen from another goroutine. It blocks until the event
// loop has drawn, so it must not be called from a handler.
func (a *Application) Draw() *Application {
	return a.QueueUpdate(func() {
		a.draw()
	})
}

func (a *Application) draw() {
	a.mu.Lock()
	screen, root, force := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.mu.Unlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell diffs against its back buffer in Show, so only forced redraws
	// start from a cleared screen.
	if force {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets and focuses the primitive filling the screen.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	a.forceRedraw = true
	a.mu.Unlock()
	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	a.mu.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive, or nil.
func (a *Application) GetFocus() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns once it has run. Use it to
// change primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- func() {
		defer close(done)
		f()
	}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil || a.GetFocus() == c.Target {
			return false
		}
		a.SetFocus(c.Target)
		return true
	case ScrollCommand:
		if a.scrolled != nil {
			a.scrolled(c.Top, c.Left)
		}
		return true
	}
	return false
}
