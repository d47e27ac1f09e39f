package help

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/gridview/keybind"
)

type testKeyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k testKeyMap) ShortHelp() []keybind.Keybind  { return k.short }
func (k testKeyMap) FullHelp() [][]keybind.Keybind { return k.full }

func bind(key, desc string) keybind.Keybind {
	return keybind.NewKeybind(keybind.WithKeys(key), keybind.WithHelp(key, desc))
}

func TestShortLine(t *testing.T) {
	up, down := bind("k", "up"), bind("j", "down")
	hidden := keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled())

	tests := []struct {
		name     string
		bindings []keybind.Keybind
		width    int
		want     string
	}{
		{"unlimited", []keybind.Keybind{up, down}, 0, "k up • j down"},
		{"disabled skipped", []keybind.Keybind{up, hidden, down}, 0, "k up • j down"},
		{"truncated", []keybind.Keybind{up, down}, 8, "k up …"},
		{"no room for ellipsis", []keybind.Keybind{up, down}, 5, "k up"},
		{"empty", nil, 10, ""},
	}
	h := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(h.shortLine(tt.bindings, tt.width)); got != tt.want {
				t.Fatalf("shortLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullLines(t *testing.T) {
	h := New().SetSeparator(" | ")
	groups := [][]keybind.Keybind{
		{bind("k", "up"), bind("j", "down")},
		{bind("g", "top")},
	}

	lines := h.fullLines(groups, 0)
	var got []string
	for _, line := range lines {
		got = append(got, plain(line))
	}
	want := []string{"k up   | g top", "j down | "}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("fullLines() = %q, want %q", got, want)
	}

	lines = h.fullLines(groups, 8)
	if len(lines) != 2 || plain(lines[0]) != "k up …" {
		t.Fatalf("narrow fullLines() first line = %q", plain(lines[0]))
	}
}

func TestDrawAndHeight(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 2)

	km := testKeyMap{
		short: []keybind.Keybind{bind("q", "quit")},
		full:  [][]keybind.Keybind{{bind("q", "quit"), bind("?", "help")}},
	}
	h := New().SetKeyMap(km)
	h.SetRect(0, 0, 20, 2)
	if h.Height() != 1 {
		t.Fatalf("short Height() = %d, want 1", h.Height())
	}
	h.Draw(screen)
	var line []rune
	for x := range 6 {
		r, _, _, _ := screen.GetContent(x, 0)
		line = append(line, r)
	}
	if string(line) != "q quit" {
		t.Fatalf("drawn line = %q", string(line))
	}
	if h.String() != "q quit" {
		t.Fatalf("String() = %q", h.String())
	}

	h.SetShowAll(true)
	if h.Height() != 2 {
		t.Fatalf("full Height() = %d, want 2", h.Height())
	}
}
