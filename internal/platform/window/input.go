package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// binding maps one physical key to a game action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings returns the layout for solo or two-player play. Solo play lets
// the arrows drive the left paddle too.
func keyBindings(twoPlayer bool) []binding {
	binds := []binding{
		{ebiten.KeyW, core.ActionUp},
		{ebiten.KeyS, core.ActionDown},
		{ebiten.KeySpace, core.ActionPause},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyR, core.ActionReset},
		{ebiten.KeyH, core.ActionHelp},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyQ, core.ActionQuit},
	}
	if twoPlayer {
		return append(binds,
			binding{ebiten.KeyArrowUp, core.ActionUp2},
			binding{ebiten.KeyArrowDown, core.ActionDown2},
		)
	}
	return append(binds,
		binding{ebiten.KeyArrowUp, core.ActionUp},
		binding{ebiten.KeyArrowDown, core.ActionDown},
	)
}

// muteKey toggles sound. It is handled by the adapter, not the game.
const muteKey = ebiten.KeyM

// keyState reports key levels and edges. ebiten's global input functions
// satisfy it in the running game; tests substitute a fake.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// readFrame builds the input for one tick: movement by level, everything
// else by edge so a held key toggles once.
func readFrame(keys keyState, binds []binding) core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range binds {
		var on bool
		if b.action.IsHeld() {
			on = keys.Pressed(b.key)
		} else {
			on = keys.JustPressed(b.key)
		}
		if on {
			f.Set(b.action)
		}
	}
	return f
}

// hints returns the in-field help line for the layout.
func hints(twoPlayer, canMute bool) string {
	line := "W/S or Up/Down: move"
	if twoPlayer {
		line = "W/S: left · Up/Down: right"
	}
	line += " · Space: pause · R: reset · H: help"
	if canMute {
		line += " · M: mute"
	}
	return line + " · Esc: quit"
}
