package window

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// fakeKeys reports a fixed set of held keys and a one-shot set of edges.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) Pressed(k ebiten.Key) bool { return f.held[k] }

func (f *fakeKeys) JustPressed(k ebiten.Key) bool {
	on := f.just[k]
	delete(f.just, k)
	return on
}

// press marks k held and freshly pressed, as ebiten reports a new key.
func (f *fakeKeys) press(k ebiten.Key) {
	f.held[k] = true
	f.just[k] = true
}

type recorder struct {
	events []core.SoundEvent
}

func (r *recorder) Play(ev core.SoundEvent) { r.events = append(r.events, ev) }

func TestReadFrame(t *testing.T) {
	tests := []struct {
		name      string
		twoPlayer bool
		key       ebiten.Key
		expected  core.Action
	}{
		{"w", false, ebiten.KeyW, core.ActionUp},
		{"s", false, ebiten.KeyS, core.ActionDown},
		{"arrow up solo", false, ebiten.KeyArrowUp, core.ActionUp},
		{"arrow down solo", false, ebiten.KeyArrowDown, core.ActionDown},
		{"arrow up duo", true, ebiten.KeyArrowUp, core.ActionUp2},
		{"arrow down duo", true, ebiten.KeyArrowDown, core.ActionDown2},
		{"space", false, ebiten.KeySpace, core.ActionPause},
		{"r", false, ebiten.KeyR, core.ActionReset},
		{"h", false, ebiten.KeyH, core.ActionHelp},
		{"esc", false, ebiten.KeyEscape, core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := newFakeKeys()
			keys.press(tc.key)
			f := readFrame(keys, keyBindings(tc.twoPlayer))
			if !f.Has(tc.expected) {
				t.Errorf("readFrame() = %v, expected %s", f.Actions, tc.expected)
			}
		})
	}
}

func TestReadFrameEdgesFireOnce(t *testing.T) {
	keys := newFakeKeys()
	keys.press(ebiten.KeySpace)
	keys.press(ebiten.KeyW)
	binds := keyBindings(false)

	first := readFrame(keys, binds)
	second := readFrame(keys, binds)

	if !first.Has(core.ActionPause) || second.Has(core.ActionPause) {
		t.Error("pause should fire only on the frame it was pressed")
	}
	if !second.Has(core.ActionUp) {
		t.Error("held movement should persist across frames")
	}
}

func newTestGame(keys keyState, player audio.Player) *Game {
	return newTestGameAt(keys, player, 60)
}

func newTestGameAt(keys keyState, player audio.Player, fps int) *Game {
	g := New(Options{
		Config:  config.DefaultPongConfig(),
		Runtime: core.RuntimeConfig{TickRate: fps, Seed: 7},
		Player:  player,
	})
	g.keys = keys
	return g
}

func TestUpdateMovesPaddle(t *testing.T) {
	keys := newFakeKeys()
	keys.press(ebiten.KeyS)
	g := newTestGame(keys, &recorder{})

	before := g.Match().Snapshot().LeftY
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if after := g.Match().Snapshot().LeftY; after != before+7000 {
		t.Errorf("LeftY = %d, expected %d", after, before+7000)
	}
}

func TestUpdateSpeedIndependentOfFrameRate(t *testing.T) {
	tests := []struct {
		fps    int
		frames int
	}{
		{60, 12},
		{30, 6},
		{15, 3},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d fps", tc.fps), func(t *testing.T) {
			keys := newFakeKeys()
			keys.press(ebiten.KeyS)
			g := newTestGameAt(keys, &recorder{}, tc.fps)

			before := g.Match().Snapshot().LeftY
			for range tc.frames {
				if err := g.Update(); err != nil {
					t.Fatalf("Update() error = %v", err)
				}
			}
			// 200ms of play is 12 ticks at any frame rate
			if after := g.Match().Snapshot().LeftY; after != before+12*7000 {
				t.Errorf("LeftY moved %d, expected %d", after-before, 12*7000)
			}
		})
	}
}

func TestUpdateQuitTerminates(t *testing.T) {
	keys := newFakeKeys()
	keys.press(ebiten.KeyEscape)
	g := newTestGame(keys, &recorder{})

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, expected ebiten.Termination", err)
	}
}

func TestUpdateForwardsSound(t *testing.T) {
	player := &recorder{}
	g := newTestGame(newFakeKeys(), player)

	for range 3000 {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	if len(player.events) == 0 {
		t.Error("no sound events in 3000 ticks")
	}
}

func TestUpdateReachesWin(t *testing.T) {
	g := newTestGame(newFakeKeys(), &recorder{})
	for range 200000 {
		if g.Match().State() == pong.StateWon {
			return
		}
		if err := g.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	t.Error("an idle human should lose to the CPU eventually")
}

type mutingRecorder struct {
	recorder
	muted bool
}

func (r *mutingRecorder) ToggleMute() bool {
	r.muted = !r.muted
	return !r.muted
}

func TestUpdateTogglesMute(t *testing.T) {
	keys := newFakeKeys()
	player := &mutingRecorder{}
	g := newTestGame(keys, player)

	keys.press(muteKey)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !player.muted {
		t.Fatal("M should mute a player that supports it")
	}

	// Held, not pressed again: no second toggle
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !player.muted {
		t.Error("holding M toggled mute twice")
	}

	// A plain player ignores the key
	plain := newTestGame(keys, &recorder{})
	keys.press(muteKey)
	if err := plain.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func TestHints(t *testing.T) {
	tests := []struct {
		twoPlayer, canMute bool
		contains, excludes string
	}{
		{false, false, "W/S or Up/Down", "M: mute"},
		{false, true, "M: mute", "right"},
		{true, false, "Up/Down: right", "M: mute"},
	}
	for _, tc := range tests {
		h := hints(tc.twoPlayer, tc.canMute)
		if !strings.Contains(h, tc.contains) || strings.Contains(h, tc.excludes) {
			t.Errorf("hints(%v, %v) = %q", tc.twoPlayer, tc.canMute, h)
		}
	}
}

func TestLayout(t *testing.T) {
	g := newTestGame(newFakeKeys(), &recorder{})
	w, h := g.Layout(1920, 1080)
	if w != 900 || h != 600 {
		t.Errorf("Layout() = %d, %d, expected 900, 600", w, h)
	}
}
