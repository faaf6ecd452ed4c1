package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Up2   key.Binding
	Down2 key.Binding
	Pause key.Binding
	Reset key.Binding
	Help  key.Binding
	Mute  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the bindings for solo or two-player play.
// Solo play lets the arrows drive the left paddle too.
func DefaultKeyMap(twoPlayer bool) KeyMap {
	k := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Up2: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
			key.WithDisabled(),
		),
		Down2: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
			key.WithDisabled(),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	if twoPlayer {
		k.Up.SetKeys("w")
		k.Up.SetHelp("w", "left up")
		k.Down.SetKeys("s")
		k.Down.SetHelp("s", "left down")
		k.Up2.SetEnabled(true)
		k.Down2.SetEnabled(true)
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Up2, k.Down2, k.Pause, k.Reset, k.Help, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Up2, k.Down2},
		{k.Pause, k.Reset, k.Help, k.Mute, k.Quit},
	}
}

// Action translates a key message to a game action. Mute is not a game
// action; the model handles it before asking.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up2):
		return core.ActionUp2
	case key.Matches(msg, k.Down2):
		return core.ActionDown2
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// Hint returns a one-line description of the enabled bindings, for the
// in-field help text.
func (k KeyMap) Hint() string {
	parts := make([]string, 0, 9)
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
