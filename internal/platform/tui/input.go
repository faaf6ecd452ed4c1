package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// defaultHoldFor is how long one key press keeps a movement active.
// Terminals report presses and auto-repeats but never releases.
const defaultHoldFor = 150 * time.Millisecond

// heldKeys emulates held movement keys from repeated press events.
type heldKeys struct {
	holdFor time.Duration
	until   map[core.Action]time.Time
}

func newHeldKeys(holdFor time.Duration) *heldKeys {
	return &heldKeys{
		holdFor: holdFor,
		until:   make(map[core.Action]time.Time),
	}
}

// opposite pairs cancel each other so direction changes are immediate.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionUp2:   core.ActionDown2,
	core.ActionDown2: core.ActionUp2,
}

// Press marks a movement action active until now+holdFor.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	if !a.IsHeld() {
		return
	}
	delete(h.until, opposite[a])
	h.until[a] = now.Add(h.holdFor)
}

// Frame returns the movement actions still active at now and forgets
// expired ones.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return f
}
