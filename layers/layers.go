// Package layers stacks primitives on top of each other.
package layers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/gridview"
)

// layer represents one layer of a Layers object.
type layer struct {
	name    string             // The layer's name.
	item    gridview.Primitive // The layer's primitive.
	resize  bool               // Whether or not to resize the layer when it is drawn.
	bottom  bool               // Whether to dock the layer to the bottom edge.
	visible bool               // Whether or not this layer is visible.
	enabled bool               // Whether or not this layer can receive focus/input.
	overlay bool               // Whether this layer applies a background style to layers behind it.
}

// Heighted is implemented by primitives that know how many rows they need.
type Heighted interface {
	Height() int
}

// Layers is a container for other primitives laid out on top of each other.
// The layers are drawn from back to front. A visible overlay layer restyles
// the layers behind it and keeps mouse input from reaching them.
type Layers struct {
	*gridview.Box

	// The contained layers. (Visible) layers are drawn from back to front.
	layers []*layer
	// The style applied to layers behind the active overlay layer.
	backgroundLayerStyle tcell.Style

	// We keep a reference to the function which allows us to set the focus to
	// a newly visible layer.
	setFocus func(p gridview.Primitive)
}

// Option configures a layer on Add.
type Option func(*layer)

// WithName sets the layer's name.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer is resized to the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithBottomDock docks the layer to the bottom of the container's inner rect,
// full width. Its height is taken from [Heighted] if the primitive implements
// it and is 1 otherwise.
func WithBottomDock() Option {
	return func(l *layer) {
		l.bottom = true
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object.
func New() *Layers {
	return &Layers{
		Box:                  gridview.NewBox(),
		backgroundLayerStyle: tcell.StyleDefault.Dim(true),
	}
}

// AddLayer adds a new layer for the given primitive, replacing a layer of the
// same name.
func (l *Layers) AddLayer(item gridview.Primitive, opts ...Option) *Layers {
	newLayer := &layer{
		item:    item,
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		opt(newLayer)
	}
	if newLayer.name != "" {
		l.remove(newLayer.name)
	}
	l.layers = append(l.layers, newLayer)
	l.refocus()
	return l
}

// RemoveLayer removes the layer with the given name.
func (l *Layers) RemoveLayer(name string) *Layers {
	l.remove(name)
	l.refocus()
	return l
}

func (l *Layers) remove(name string) {
	for index, layer := range l.layers {
		if layer.name == name {
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
			return
		}
	}
}

// GetLayer returns the primitive of the named layer, or nil.
func (l *Layers) GetLayer(name string) gridview.Primitive {
	if layer := l.find(name); layer != nil {
		return layer.item
	}
	return nil
}

// GetVisible returns whether the given layer is visible.
func (l *Layers) GetVisible(name string) bool {
	layer := l.find(name)
	return layer != nil && layer.visible
}

// ShowLayer makes the named layer visible.
func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

// HideLayer hides the named layer.
func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

// ToggleLayer flips the visibility of the named layer.
func (l *Layers) ToggleLayer(name string) *Layers {
	return l.setVisible(name, !l.GetVisible(name))
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	if layer := l.find(name); layer != nil && layer.visible != visible {
		layer.visible = visible
		l.refocus()
	}
	return l
}

// SetBackgroundLayerStyle sets the style applied to layers behind the active
// overlay layer.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	l.backgroundLayerStyle = style
	return l
}

func (l *Layers) find(name string) *layer {
	for _, layer := range l.layers {
		if layer.name == name {
			return layer
		}
	}
	return nil
}

// refocus hands the focus to the front layer after a change, if the container
// had it.
func (l *Layers) refocus() {
	if l.setFocus != nil && l.HasFocus() {
		l.Focus(l.setFocus)
	}
}

// HasFocus returns whether or not this primitive has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus is called by the application when the primitive receives focus.
func (l *Layers) Focus(delegate func(p gridview.Primitive)) {
	if delegate == nil {
		return // We cannot delegate so we cannot focus.
	}
	l.setFocus = delegate
	if top := l.frontLayer(); top != nil {
		delegate(top.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	overlayIndex := l.overlayIndex()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		switch {
		case layer.bottom:
			rows := 1
			if h, ok := layer.item.(Heighted); ok {
				rows = h.Height()
			}
			rows = min(rows, height)
			layer.item.SetRect(x, y+height-rows, width, rows)
		case layer.resize:
			layer.item.SetRect(x, y, width, height)
		}

		target := screen
		if index < overlayIndex {
			target = &overlayScreen{Screen: screen, overlay: l.backgroundLayerStyle}
		}
		layer.item.Draw(target)
	}
}

// MouseHandler passes mouse events to the front-most layer that takes them,
// but never to layers behind a visible overlay.
func (l *Layers) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.overlayIndex()
	for index := len(l.layers) - 1; index >= 0 && index >= overlayIndex; index-- {
		layer := l.layers[index]
		if !layer.visible || !layer.enabled {
			continue
		}
		capture, cmd := layer.item.MouseHandler(action, event)
		if capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	if overlayIndex >= 0 {
		return nil, gridview.ConsumeEventCommand{}
	}
	return nil, nil
}

// InputHandler passes key events to the focused layer.
func (l *Layers) InputHandler(event *tcell.EventKey) gridview.Command {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return layer.item.InputHandler(event)
		}
	}
	return nil
}

func (l *Layers) frontLayer() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// overlayIndex returns the index of the top-most visible overlay layer, or -1.
func (l *Layers) overlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.overlay {
			return index
		}
	}
	return -1
}

type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func (s *overlayScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, applyBackgroundStyle(style, s.overlay))
}

// applyBackgroundStyle sets the overlay's explicit colors on base and adds
// its attributes.
func applyBackgroundStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	overlayFg, overlayBg, overlayAttrs := overlay.Decompose()
	_, _, baseAttrs := base.Decompose()
	if overlayFg != tcell.ColorDefault {
		base = base.Foreground(overlayFg)
	}
	if overlayBg != tcell.ColorDefault {
		base = base.Background(overlayBg)
	}
	return base.Attributes(baseAttrs | overlayAttrs)
}
