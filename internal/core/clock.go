package core

import "time"

// DefaultMaxSteps caps how many ticks one Advance may produce.
const DefaultMaxSteps = 5

// Stepper converts elapsed real time into whole fixed-length simulation ticks.
// Leftover time carries into the next call so the simulation rate stays
// independent of how often the display refreshes.
type Stepper struct {
	step     time.Duration
	acc      time.Duration
	maxSteps int
}

// NewStepper creates a stepper producing ticks of the given length.
func NewStepper(step time.Duration, maxSteps int) *Stepper {
	if step <= 0 {
		step = time.Second / 60
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Stepper{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed time and returns the number of ticks to simulate.
// After a long stall the backlog beyond maxSteps is discarded rather than
// replayed.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	s.acc += elapsed

	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step
	if n > s.maxSteps {
		n = s.maxSteps
		s.acc = 0
	}
	return n
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}

// Step returns the fixed tick length.
func (s *Stepper) Step() time.Duration {
	return s.step
}
