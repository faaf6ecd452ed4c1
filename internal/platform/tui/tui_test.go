package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	tests := []struct {
		name      string
		twoPlayer bool
		msg       tea.KeyMsg
		expected  core.Action
	}{
		{"w solo", false, runeKey('w'), core.ActionUp},
		{"s solo", false, runeKey('s'), core.ActionDown},
		{"arrow up solo", false, tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down solo", false, tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow up duo", true, tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp2},
		{"arrow down duo", true, tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown2},
		{"w duo", true, runeKey('w'), core.ActionUp},
		{"space", false, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"reset", false, runeKey('r'), core.ActionReset},
		{"help", false, runeKey('h'), core.ActionHelp},
		{"esc", false, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", false, tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", false, runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := DefaultKeyMap(tc.twoPlayer)
			if got := k.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHint(t *testing.T) {
	solo := DefaultKeyMap(false).Hint()
	if strings.Contains(solo, "right up") {
		t.Errorf("solo hint mentions disabled bindings: %q", solo)
	}
	if !strings.Contains(solo, "space pause") || !strings.Contains(solo, "esc quit") {
		t.Errorf("solo hint = %q", solo)
	}

	duo := DefaultKeyMap(true).Hint()
	if !strings.Contains(duo, "right up") {
		t.Errorf("two-player hint = %q, expected right paddle keys", duo)
	}
}

func TestHeldKeys(t *testing.T) {
	base := time.Unix(0, 0)
	h := newHeldKeys(100 * time.Millisecond)

	h.Press(core.ActionUp, base)
	if f := h.Frame(base.Add(50 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("press should still be held after 50ms")
	}
	if f := h.Frame(base.Add(100 * time.Millisecond)); f.Has(core.ActionUp) {
		t.Error("press should expire after the hold window")
	}

	h.Press(core.ActionUp, base)
	h.Press(core.ActionDown, base)
	f := h.Frame(base)
	if f.Has(core.ActionUp) || !f.Has(core.ActionDown) {
		t.Errorf("opposite press should cancel: %v", f.Actions)
	}

	h.Press(core.ActionPause, base)
	if h.Frame(base).Has(core.ActionPause) {
		t.Error("edge actions must not be held")
	}
}

func TestRasterize(t *testing.T) {
	g := pong.New(config.DefaultPongConfig())
	s := core.NewScreen(80, 24)

	Rasterize(g.Render(), s)

	if got := s.Get(1, 0); got != '╭' {
		t.Errorf("border corner = %q, expected '╭'", got)
	}
	if got := s.Get(78, 23); got != '╯' {
		t.Errorf("border corner = %q, expected '╯'", got)
	}
	for y := 9; y <= 14; y++ {
		if s.Get(3, y) != PaddleChar {
			t.Errorf("left paddle missing at (3, %d)", y)
		}
	}
	if cell := s.GetCell(3, 10); cell.Color != pong.ColorForeground {
		t.Errorf("paddle color = %d, expected %d", cell.Color, pong.ColorForeground)
	}
	if !strings.ContainsRune(s.String(), BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.Contains(s.String(), "First to 11 wins.") {
		t.Error("help text not drawn")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	s := core.NewScreen(10, 5)
	s.Set(0, 0, 'x')
	Rasterize(pong.DrawList{}, s)
	if s.Get(0, 0) != ' ' {
		t.Error("empty draw list should leave a cleared screen")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorGray)
	s.DrawTextColored(2, 0, "cd", core.ColorBrightBlue)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}

func newTestModel() Model {
	m := NewModel(Options{
		Config:  config.DefaultPongConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Width:   80,
		Height:  25,
	})
	fixed := time.Unix(100, 0)
	m.now = func() time.Time { return fixed }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelMovesPaddle(t *testing.T) {
	m := newTestModel()
	before := m.Game().Snapshot().LeftY

	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg(time.Unix(100, 0)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	after := m.Game().Snapshot().LeftY
	if after != before-7000 {
		t.Errorf("LeftY = %d, expected %d", after, before-7000)
	}
}

func TestModelPauseAndView(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))
	if m.Game().State() != pong.StatePaused {
		t.Fatalf("State() = %s, expected paused", m.Game().State())
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("View() should show the pause text")
	}

	// Edges are consumed by one tick
	m, _ = update(t, m, TickMsg(time.Unix(100, 0).Add(time.Second/60)))
	if m.Game().State() != pong.StatePaused {
		t.Error("pause toggled twice from one key press")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return tea.Quit")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("View() = %q, expected a resize hint", m.View())
	}
}

type countingPlayer struct {
	n int
}

func (p *countingPlayer) Play(core.SoundEvent) { p.n++ }

func TestModelForwardsSoundEvents(t *testing.T) {
	player := &countingPlayer{}
	m := NewModel(Options{
		Config:  config.DefaultPongConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 3},
		Player:  player,
		Width:   80,
		Height:  25,
	})

	tick := time.Unix(0, 0)
	for range 3000 {
		tick = tick.Add(time.Second / 60)
		m, _ = update(t, m, TickMsg(tick))
	}
	if player.n == 0 {
		t.Error("no sound events reached the player in 3000 ticks")
	}
}

type mutingPlayer struct {
	countingPlayer
	toggles int
	muted   bool
}

func (p *mutingPlayer) ToggleMute() bool {
	p.toggles++
	p.muted = !p.muted
	return !p.muted
}

func TestModelTogglesMute(t *testing.T) {
	tests := []struct {
		name     string
		player   audio.Player
		hint     bool
		expected int
	}{
		{"muter", &mutingPlayer{}, true, 1},
		{"plain player", &countingPlayer{}, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(Options{
				Config:  config.DefaultPongConfig(),
				Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
				Player:  tc.player,
				Width:   80,
				Height:  25,
			})
			if got := strings.Contains(m.keys.Hint(), "m mute"); got != tc.hint {
				t.Errorf("hint mentions mute = %v, expected %v", got, tc.hint)
			}

			m, cmd := update(t, m, runeKey('m'))
			if cmd != nil {
				t.Error("mute should not return a command")
			}
			if mp, ok := tc.player.(*mutingPlayer); ok && mp.toggles != tc.expected {
				t.Errorf("toggles = %d, expected %d", mp.toggles, tc.expected)
			}
			if m.Game().State() != pong.StatePlaying {
				t.Errorf("State() = %s, mute must not touch the match", m.Game().State())
			}
		})
	}
}
