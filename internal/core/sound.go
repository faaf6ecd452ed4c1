package core

// SoundEvent is a fire-and-forget audio trigger emitted by the simulation.
// Adapters may play, queue, or drop these without affecting gameplay.
type SoundEvent int

const (
	SoundWallBounce SoundEvent = iota
	SoundPaddleHit
	SoundScore

	soundEventCount
)

// SoundEventCount is the number of distinct sound events.
const SoundEventCount = int(soundEventCount)

// String returns a human-readable name for the event.
func (e SoundEvent) String() string {
	switch e {
	case SoundWallBounce:
		return "wall"
	case SoundPaddleHit:
		return "paddle"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}
