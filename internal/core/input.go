package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Held: move the human (left) paddle up
	ActionDown          // Held: move the human (left) paddle down
	ActionUp2           // Held: move the right paddle up (two-player mode)
	ActionDown2         // Held: move the right paddle down (two-player mode)
	ActionPause         // Edge: toggle pause
	ActionReset         // Edge: reset scores and serve
	ActionHelp          // Edge: toggle help text
	ActionQuit          // Edge: end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionUp2:
		return "Up2"
	case ActionDown2:
		return "Down2"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action describes a continuously held control
// rather than a one-shot trigger.
func (a Action) IsHeld() bool {
	switch a {
	case ActionUp, ActionDown, ActionUp2, ActionDown2:
		return true
	}
	return false
}

// InputFrame represents the input state for one frame.
// It contains all actions that are active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldOnly returns a copy with every edge-triggered action removed.
// Used when one frame is split into several simulation ticks.
func (f InputFrame) HeldOnly() InputFrame {
	held := NewInputFrame()
	for k, v := range f.Actions {
		if v && k.IsHeld() {
			held.Actions[k] = true
		}
	}
	return held
}

// Axis returns -1, 0 or +1 for a pair of opposing held actions.
// Negative is up (screen y grows downwards).
func (f InputFrame) Axis(up, down Action) float64 {
	var v float64
	if f.Has(up) {
		v--
	}
	if f.Has(down) {
		v++
	}
	return v
}
