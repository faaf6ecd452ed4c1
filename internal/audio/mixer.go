package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const (
	bufferDuration = 20 * time.Millisecond
	bytesPerFrame  = 4 // Stereo int16
	queueSize      = 16
)

// activeSound tracks a playing sound instance
type activeSound struct {
	buffer []float64
	pos    int
}

// Mixer sums queued effects and writes PCM to an output on a fixed cadence.
type Mixer struct {
	output io.Writer
	bank   *soundBank
	frames int // Samples per write

	playQueue chan core.SoundEvent
	stopChan  chan struct{}
	done      chan struct{}
	stopped   atomic.Bool

	// Accessed only by the mix goroutine
	active []activeSound

	statsMu sync.Mutex
	played  uint64
	dropped uint64

	errChan chan error
}

// NewMixer creates a mixer writing to out.
func NewMixer(out io.Writer, bank *soundBank, sampleRate int) *Mixer {
	frames := int(time.Duration(sampleRate) * bufferDuration / time.Second)
	return &Mixer{
		output:    out,
		bank:      bank,
		frames:    frames,
		playQueue: make(chan core.SoundEvent, queueSize),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		active:    make([]activeSound, 0, 4),
		errChan:   make(chan error, 1),
	}
}

// Start begins the mixing loop.
func (m *Mixer) Start() {
	go m.loop()
}

// Stop signals the mixer to halt and waits for the loop to exit.
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
	<-m.done
}

// Play queues an event. A full queue drops it.
func (m *Mixer) Play(ev core.SoundEvent) {
	if m.stopped.Load() {
		return
	}
	select {
	case m.playQueue <- ev:
	default:
		m.statsMu.Lock()
		m.dropped++
		m.statsMu.Unlock()
	}
}

// Errors returns the channel that receives the first write error.
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

// Stats returns played and dropped counts.
func (m *Mixer) Stats() (played, dropped uint64) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.played, m.dropped
}

func (m *Mixer) loop() {
	defer close(m.done)

	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	mixBuf := make([]float64, m.frames)
	outBytes := make([]byte, m.frames*bytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case ev := <-m.playQueue:
			m.enqueue(ev)

		case <-ticker.C:
			m.fill(mixBuf, outBytes)
			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %w", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

func (m *Mixer) enqueue(ev core.SoundEvent) {
	buf := m.bank.get(ev)
	if len(buf) == 0 {
		return
	}
	m.active = append(m.active, activeSound{buffer: buf})
	m.statsMu.Lock()
	m.played++
	m.statsMu.Unlock()
}

// fill mixes the next block of active sounds into out. Silence keeps the
// pipe fed when nothing is playing.
func (m *Mixer) fill(mixBuf []float64, out []byte) {
	clear(mixBuf)

	remaining := m.active[:0]
	for i := range m.active {
		s := &m.active[i]
		for j := 0; j < len(mixBuf) && s.pos < len(s.buffer); j++ {
			mixBuf[j] += s.buffer[s.pos]
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}
	m.active = remaining

	floatToBytes(mixBuf, out)
}

// floatToBytes converts mono floats to interleaved stereo int16 LE,
// soft-limiting above 0.8 before the hard clip.
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}
		v = core.ClampF(v, -1, 1)

		s := uint16(int16(v * 32767)) //#nosec G115 -- two's complement PCM
		idx := i * bytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], s)
		binary.LittleEndian.PutUint16(out[idx+2:], s)
	}
}
