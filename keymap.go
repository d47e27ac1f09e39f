package gridview

import "github.com/ayn2op/gridview/keybind"

// Keymap holds the keybinds a GridView scrolls with.
type Keymap struct {
	ScrollUp    keybind.Keybind
	ScrollDown  keybind.Keybind
	ScrollLeft  keybind.Keybind
	ScrollRight keybind.Keybind
	PageUp      keybind.Keybind
	PageDown    keybind.Keybind
	Home        keybind.Keybind
	End         keybind.Keybind
}

// DefaultKeymap returns arrow, vi and paging keys.
func DefaultKeymap() Keymap {
	return Keymap{
		ScrollUp:    keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		ScrollDown:  keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		ScrollLeft:  keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "left")),
		ScrollRight: keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "right")),
		PageUp:      keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown:    keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Home:        keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g", "top")),
		End:         keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G", "bottom")),
	}
}

// ShortHelp returns the keybinds shown in a one-line help.
func (k Keymap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.ScrollUp, k.ScrollDown, k.ScrollLeft, k.ScrollRight, k.PageUp, k.PageDown, k.Home, k.End}
}

// FullHelp returns the keybinds grouped into line and page movement.
func (k Keymap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.ScrollUp, k.ScrollDown, k.ScrollLeft, k.ScrollRight},
		{k.PageUp, k.PageDown, k.Home, k.End},
	}
}
