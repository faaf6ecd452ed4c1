package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Minimum terminal size that still shows a playable field.
const (
	minWidth  = 40
	minHeight = 12
)

var (
	helpBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.RGB().Hex()))
	tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorBrightBlue.RGB().Hex())).Bold(true)
)

// Options configures a terminal match.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Player  audio.Player // Nil means silent
	Logger  *log.Logger  // Nil means discard
	Width   int          // Initial terminal size; refined by WindowSizeMsg
	Height  int
}

// Model is the Bubble Tea model for one pong match.
type Model struct {
	game   *pong.Game
	screen *core.Screen
	player audio.Player
	logger *log.Logger

	keys  KeyMap
	help  help.Model
	held  *heldKeys
	edges core.InputFrame // Edge-triggered actions since the last tick

	runtime   core.RuntimeConfig
	width     int
	height    int
	lastTick  time.Time
	lastState pong.State
	now       func() time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a match.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Player == nil {
		opts.Player = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game := pong.New(opts.Config)
	game.Reset(opts.Runtime)

	keys := DefaultKeyMap(opts.Config.Gameplay.TwoPlayer)
	if _, ok := opts.Player.(audio.Muter); !ok {
		keys.Mute.SetEnabled(false)
	}
	game.SetHints(keys.Hint(), pong.WinHint(opts.Config.Gameplay.WinScore))

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:      game,
		player:    opts.Player,
		logger:    opts.Logger,
		keys:      keys,
		help:      h,
		held:      newHeldKeys(defaultHoldFor),
		edges:     core.NewInputFrame(),
		runtime:   opts.Runtime,
		lastState: game.State(),
		now:       time.Now,
		screen:    core.NewScreen(0, 0),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a key press for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Mute) {
		if p, ok := m.player.(audio.Muter); ok {
			m.logger.Info("sound toggled", "on", p.ToggleMute())
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", scoreString(m.game))
		return m, tea.Quit
	case action.IsHeld():
		m.held.Press(action, m.now())
	default:
		m.edges.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.runtime.TickInterval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.held.Frame(m.now())
	for a, on := range m.edges.Actions {
		if on {
			in.Set(a)
		}
	}
	m.edges.Clear()

	res := m.game.Advance(in, elapsed)
	audio.PlayAll(m.player, res.Events)

	if res.State != m.lastState {
		m.logger.Debug("state changed", "from", m.lastState, "to", res.State, "score", scoreString(m.game))
		if res.State == pong.StateWon {
			m.logger.Info("match won", "winner", res.Winner, "score", scoreString(m.game))
		}
		m.lastState = res.State
	}

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// resize fits the field into the terminal, leaving one row for the help bar.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.screen.Resize(max(0, width), max(0, height-1))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return tooSmallStyle.Render("Terminal too small for pong. Resize or press esc.")
	}

	Rasterize(m.game.Render(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpBarStyle.Render(m.help.View(m.keys))
}

// Game returns the match being played.
func (m Model) Game() *pong.Game {
	return m.game
}

func scoreString(g *pong.Game) string {
	l, r := g.Scores()
	return fmt.Sprintf("%d:%d", l, r)
}

// Run starts the Bubble Tea program for a local match.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
