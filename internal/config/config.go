// Package config provides YAML-based game configuration loading and
// difficulty presets for pong.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PongConfig contains all tuning parameters for the game.
// It is loaded once at startup and treated as immutable afterwards.
type PongConfig struct {
	Field    PongField    `yaml:"field"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Ball     PongBall     `yaml:"ball"`
	CPU      PongCPU      `yaml:"cpu"`
	Gameplay PongGameplay `yaml:"gameplay"`
	Audio    AudioConfig  `yaml:"audio"`
}

// PongField defines the logical window and the play-area inset.
type PongField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Inset of the play area from the window edges
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // Distance from the play-area side to the paddle
	Speed  float64 `yaml:"speed"` // Units per tick
}

// PongBall defines ball geometry and the speed budget.
type PongBall struct {
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`      // Fixed speed budget, units per tick
	SpinBoost      float64 `yaml:"spin_boost"` // Added to Speed when computing post-bounce vy
	MinRise        float64 `yaml:"min_rise"`   // Serve |vy|/|vx| lower bound
	MaxRise        float64 `yaml:"max_rise"`   // Serve |vy|/|vx| upper bound
	ScoreTolerance float64 `yaml:"score_tolerance"`
}

// PongCPU defines the scripted opponent.
type PongCPU struct {
	SpeedFactor float64 `yaml:"speed_factor"` // Fraction of paddle speed the CPU may use
	DeadBand    float64 `yaml:"dead_band"`    // Vertical tolerance before the CPU reacts
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore  int  `yaml:"win_score"`
	ShowHelp  bool `yaml:"show_help"`
	TwoPlayer bool `yaml:"two_player"` // Right paddle follows a second human instead of the CPU
}

// AudioConfig defines the sound-trigger adapter.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// Validate checks that the configuration describes a playable field.
func (c PongConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Field.Margin >= 0, "field margin must not be negative, got %v", c.Field.Margin)
	areaW := c.Field.Width - 2*c.Field.Margin
	areaH := c.Field.Height - 2*c.Field.Margin
	check(areaW > 0 && areaH > 0, "margin %v leaves no play area", c.Field.Margin)

	check(c.Paddles.Width > 0 && c.Paddles.Height > 0, "paddle size must be positive, got %vx%v", c.Paddles.Width, c.Paddles.Height)
	check(c.Paddles.Height <= areaH, "paddle height %v exceeds play area height %v", c.Paddles.Height, areaH)
	check(c.Paddles.Speed > 0, "paddle speed must be positive, got %v", c.Paddles.Speed)
	check(c.Paddles.Inset >= 0, "paddle inset must not be negative, got %v", c.Paddles.Inset)
	check(2*(c.Paddles.Inset+c.Paddles.Width) < areaW, "paddles overlap: inset %v width %v", c.Paddles.Inset, c.Paddles.Width)

	check(c.Ball.Size > 0 && c.Ball.Size < areaH, "ball size %v must fit the play area", c.Ball.Size)
	check(c.Ball.Speed > 0, "ball speed must be positive, got %v", c.Ball.Speed)
	check(c.Ball.SpinBoost >= 0, "spin boost must not be negative, got %v", c.Ball.SpinBoost)
	check(c.Ball.MinRise > 0 && c.Ball.MinRise <= c.Ball.MaxRise && c.Ball.MaxRise <= 1,
		"rise range must satisfy 0 < min <= max <= 1, got [%v, %v]", c.Ball.MinRise, c.Ball.MaxRise)
	check(c.Ball.ScoreTolerance >= 0, "score tolerance must not be negative, got %v", c.Ball.ScoreTolerance)

	check(c.CPU.SpeedFactor > 0 && c.CPU.SpeedFactor <= 1, "cpu speed factor must be in (0, 1], got %v", c.CPU.SpeedFactor)
	check(c.CPU.DeadBand >= 0, "cpu dead band must not be negative, got %v", c.CPU.DeadBand)

	check(c.Gameplay.WinScore > 0, "win score must be positive, got %d", c.Gameplay.WinScore)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume must be in [0, 1], got %v", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio sample rate must be positive, got %d", c.Audio.SampleRate)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
