// Package keybind matches tcell key events against bindings written as
// strings such as "j", "pgdn", "ctrl+f" or "shift+tab".
package keybind

import (
	"slices"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of equivalent keys plus the help shown for them.
type Keybind struct {
	chords   []chord
	help     Help
	disabled bool
}

// Help is the short description of a keybind.
type Help struct {
	Key  string
	Desc string
}

// Option configures a Keybind.
type Option func(*Keybind)

// NewKeybind returns a keybind configured by options.
func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys triggering the keybind. Keys that cannot be parsed
// are dropped.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.chords = k.chords[:0]
		for _, key := range keys {
			if c, ok := parseChord(key); ok {
				k.chords = append(k.chords, c)
			}
		}
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the keybind disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Help() Help {
	return k.help
}

// Enabled reports whether the keybind takes part in matching and help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.chords) > 0
}

// SetEnabled enables or disables the keybind.
func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	c := eventChord(event)
	for _, k := range keybinds {
		if k.Enabled() && slices.Contains(k.chords, c) {
			return true
		}
	}
	return false
}

// chord is one key combination in the form tcell reports it. Runes carry no
// shift modifier because the shift is part of the rune.
type chord struct {
	key  tcell.Key
	ch   rune
	mods tcell.ModMask
}

var namedKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"pgup":      tcell.KeyPgUp,
	"pageup":    tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"pgdown":    tcell.KeyPgDn,
	"pagedown":  tcell.KeyPgDn,
}

var modifiers = map[string]tcell.ModMask{
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"alt":     tcell.ModAlt,
	"shift":   tcell.ModShift,
	"meta":    tcell.ModMeta,
}

// parseChord parses "mod+mod+key". "ctrl-x" is accepted as "ctrl+x", and
// "Rune[x]" as "x".
func parseChord(s string) (chord, bool) {
	s = strings.TrimSpace(s)
	if len(s) > len("ctrl-") && strings.EqualFold(s[:len("ctrl-")], "ctrl-") {
		s = "ctrl+" + s[len("ctrl-"):]
	}
	parts := strings.Split(s, "+")
	name := strings.TrimSpace(parts[len(parts)-1])

	var mods tcell.ModMask
	for _, part := range parts[:len(parts)-1] {
		mod, ok := modifiers[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return chord{}, false
		}
		mods |= mod
	}

	if inner, ok := strings.CutPrefix(name, "Rune["); ok && strings.HasSuffix(inner, "]") {
		name = strings.TrimSuffix(inner, "]")
	}
	if name == "space" {
		name = " "
	}
	if r := []rune(name); len(r) == 1 {
		return runeChord(r[0], mods), true
	}

	key, ok := namedKeys[strings.ToLower(name)]
	if !ok {
		return chord{}, false
	}
	if key == tcell.KeyTab && mods&tcell.ModShift != 0 {
		key = tcell.KeyBacktab
	}
	if key == tcell.KeyBacktab {
		mods &^= tcell.ModShift
	}
	return chord{key: key, mods: mods}, true
}

func runeChord(r rune, mods tcell.ModMask) chord {
	lower := unicode.ToLower(r)
	if mods&tcell.ModCtrl != 0 && lower >= 'a' && lower <= 'z' {
		return chord{key: tcell.KeyCtrlA + tcell.Key(lower-'a'), mods: mods &^ tcell.ModShift}
	}
	if mods&tcell.ModShift != 0 {
		r, mods = unicode.ToUpper(r), mods&^tcell.ModShift
	}
	if mods != 0 {
		r = unicode.ToLower(r)
	}
	return chord{key: tcell.KeyRune, ch: r, mods: mods}
}

// eventChord returns the chord event was produced by.
func eventChord(event *tcell.EventKey) chord {
	key, mods := event.Key(), event.Modifiers()
	switch {
	case key == tcell.KeyRune:
		return runeChord(event.Rune(), mods&^tcell.ModShift)
	case key == tcell.KeyBackspace:
		// Backspace shares its code with ctrl+h.
		if mods&tcell.ModCtrl == 0 {
			key = tcell.KeyBackspace2
		}
	case key == tcell.KeyBacktab:
		mods &^= tcell.ModShift
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && key != tcell.KeyTab && key != tcell.KeyEnter:
		mods |= tcell.ModCtrl
	}
	return chord{key: key, mods: mods}
}
