package pong

// State is the match flow state.
type State string

// Match states
const (
	StatePlaying State = "playing" // Ball in play
	StatePaused  State = "paused"  // Frozen by the player
	StateWon     State = "won"     // A side reached the win score
)

// Trigger is an event that may move the match to another state.
type Trigger int

const (
	TriggerPause Trigger = iota // Pause key
	TriggerReset                // Reset key
	TriggerWin                  // Win threshold reached
)

// Next returns the state after applying t to s.
// Reset always returns to play; pause only toggles between playing and
// paused; a win is only reachable from play.
func Next(s State, t Trigger) State {
	switch t {
	case TriggerReset:
		return StatePlaying
	case TriggerPause:
		switch s {
		case StatePlaying:
			return StatePaused
		case StatePaused:
			return StatePlaying
		}
	case TriggerWin:
		if s == StatePlaying {
			return StateWon
		}
	}
	return s
}

// Side identifies a paddle.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns "Left", "Right" or "" for SideNone.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return ""
	}
}
