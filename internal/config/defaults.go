package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: PongField{
			Width:  900,
			Height: 600,
			Margin: 20,
		},
		Paddles: PongPaddles{
			Width:  14,
			Height: 110,
			Inset:  18,
			Speed:  7,
		},
		Ball: PongBall{
			Size:           14,
			Speed:          6,
			SpinBoost:      0.5,
			MinRise:        0.2,
			MaxRise:        0.8,
			ScoreTolerance: 4,
		},
		CPU: PongCPU{
			SpeedFactor: 0.9,
			DeadBand:    12,
		},
		Gameplay: PongGameplay{
			WinScore: 11,
			ShowHelp: true,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
