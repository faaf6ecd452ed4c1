// Package audio turns simulation sound events into short synthesized
// effects piped to a system audio tool. Every failure degrades to silence;
// gameplay never waits on audio.
package audio

import (
	"errors"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("audio: no compatible backend found")
	ErrPipeClosed     = errors.New("audio: pipe closed")
)

// Player consumes sound events. Play must not block.
type Player interface {
	Play(ev core.SoundEvent)
}

// Muter is a Player that can be silenced at runtime.
type Muter interface {
	Player
	// ToggleMute flips mute and reports whether sound is now on.
	ToggleMute() bool
}

// NopPlayer discards every event.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(core.SoundEvent) {}

// PlayAll forwards every event to p.
func PlayAll(p Player, events []core.SoundEvent) {
	for _, ev := range events {
		p.Play(ev)
	}
}

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
)

// BackendConfig describes a CLI audio backend that reads raw
// 16-bit little-endian stereo PCM on stdin.
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}
