package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates a tone streamer of the given length.
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.release

	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack && e.attack > 0:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= releaseStart && e.release > 0:
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := 3 * time.Millisecond
	release := d / 2
	return newEnvelope(newOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// effectStreamer builds the streamer for one event and its length in samples.
func effectStreamer(ev core.SoundEvent, rate beep.SampleRate) (beep.Streamer, int) {
	switch ev {
	case core.SoundWallBounce:
		d := 45 * time.Millisecond
		return tone(440, d, WaveTriangle, rate), rate.N(d)
	case core.SoundPaddleHit:
		d := 60 * time.Millisecond
		mixed := beep.Mix(
			newVolume(tone(660, d, WaveSquare, rate), 0.6),
			newVolume(tone(1320, d, WaveSine, rate), 0.4),
		)
		return mixed, rate.N(d)
	case core.SoundScore:
		n1, n2 := 90*time.Millisecond, 160*time.Millisecond
		seq := beep.Seq(
			tone(523.25, n1, WaveSquare, rate),
			tone(392.00, n2, WaveSquare, rate),
		)
		return seq, rate.N(n1) + rate.N(n2)
	default:
		return nil, 0
	}
}

// synthesize renders an event to mono float samples scaled by volume.
func synthesize(ev core.SoundEvent, sampleRate int, volume float64) []float64 {
	rate := beep.SampleRate(sampleRate)
	s, total := effectStreamer(ev, rate)
	if s == nil || total <= 0 {
		return nil
	}
	s = beep.Take(total, newVolume(s, volume))

	out := make([]float64, 0, total)
	chunk := make([][2]float64, 512)
	for len(out) < total {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = append(out, (chunk[i][0]+chunk[i][1])/2)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// soundBank holds pre-rendered buffers for every event.
type soundBank [core.SoundEventCount][]float64

func newSoundBank(sampleRate int, volume float64) *soundBank {
	var b soundBank
	for i := range b {
		b[i] = synthesize(core.SoundEvent(i), sampleRate, volume)
	}
	return &b
}

func (b *soundBank) get(ev core.SoundEvent) []float64 {
	if int(ev) < 0 || int(ev) >= len(b) {
		return nil
	}
	return b[ev]
}

// PCM renders an event as 16-bit little-endian stereo, the format both the
// pipe backends and in-process players consume. Unknown events yield nil.
func PCM(ev core.SoundEvent, sampleRate int, volume float64) []byte {
	samples := synthesize(ev, sampleRate, volume)
	if len(samples) == 0 {
		return nil
	}
	out := make([]byte, len(samples)*bytesPerFrame)
	floatToBytes(samples, out)
	return out
}
