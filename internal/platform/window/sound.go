package window

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// maxVoices caps concurrently playing effects.
const maxVoices = 8

// soundPlayer plays effects through ebiten's in-process audio context, so a
// window needs no external audio tool.
type soundPlayer struct {
	ctx    *ebaudio.Context
	bank   [core.SoundEventCount][]byte
	voices []*ebaudio.Player
	muted  bool
}

var _ audio.Muter = (*soundPlayer)(nil)

// newSoundPlayer pre-renders every effect and starts muted when audio is
// disabled. ebiten allows one audio context per process, so an existing one
// is reused.
func newSoundPlayer(cfg config.AudioConfig) *soundPlayer {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(cfg.SampleRate)
	}
	p := &soundPlayer{ctx: ctx, muted: !cfg.Enabled}
	for i := range p.bank {
		p.bank[i] = audio.PCM(core.SoundEvent(i), ctx.SampleRate(), cfg.Volume)
	}
	return p
}

// Play starts the effect for ev. Finished voices are recycled; when all are
// busy the event is dropped.
func (p *soundPlayer) Play(ev core.SoundEvent) {
	if p.muted {
		return
	}
	if int(ev) < 0 || int(ev) >= len(p.bank) || p.bank[ev] == nil {
		return
	}

	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
		} else {
			_ = v.Close()
		}
	}
	p.voices = live
	if len(p.voices) >= maxVoices {
		return
	}

	v := p.ctx.NewPlayerFromBytes(p.bank[ev])
	v.Play()
	p.voices = append(p.voices, v)
}

// ToggleMute flips mute and reports whether sound is now on.
func (p *soundPlayer) ToggleMute() bool {
	p.muted = !p.muted
	return !p.muted
}
