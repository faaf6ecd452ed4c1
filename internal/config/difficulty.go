package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for difficulty names that do not exist.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// cpuTuning is the opponent behaviour for one preset.
type cpuTuning struct {
	speedFactor float64
	deadBand    float64
}

var presetTuning = map[DifficultyPreset]cpuTuning{
	DifficultyEasy:   {speedFactor: 0.7, deadBand: 24},
	DifficultyNormal: {speedFactor: 0.9, deadBand: 12},
	DifficultyHard:   {speedFactor: 1.0, deadBand: 4},
}

// ParsePreset converts a flag value into a preset.
// The empty string means "keep the config's own CPU settings".
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	p := DifficultyPreset(name)
	if _, ok := presetTuning[p]; !ok {
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
	return p, nil
}

// ApplyPongPreset modifies the CPU opponent based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	t, ok := presetTuning[preset]
	if !ok {
		return
	}
	cfg.CPU.SpeedFactor = t.speedFactor
	cfg.CPU.DeadBand = t.deadBand
}
