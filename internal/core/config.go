package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Adapters pace input and drawing with TickRate; games use Seed for
// deterministic simulation and keep their own fixed tick length.
type RuntimeConfig struct {
	TickRate int   // Frames per second the adapter runs at (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the duration of one adapter frame.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
