package audio

import (
	"errors"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Engine plays sound events through a detected system backend.
// It implements Player and Muter. When no backend exists or the pipe breaks
// it stays silent. An engine started muted launches its backend on the
// first unmute.
type Engine struct {
	cfg    config.AudioConfig
	logger *log.Logger
	bank   *soundBank
	mixer  atomic.Pointer[Mixer]

	mu       sync.Mutex // Guards backend launch
	launched bool
	cmd      *exec.Cmd
	stdin    io.WriteCloser

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	wg sync.WaitGroup
}

// NewEngine creates an engine and pre-renders every effect.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		cfg:    cfg,
		logger: logger.WithPrefix("audio"),
		bank:   newSoundBank(cfg.SampleRate, cfg.Volume),
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start launches the backend process and mixer. A missing backend is not
// an error: the engine runs silent.
func (e *Engine) Start() error {
	if !e.running.CompareAndSwap(false, true) {
		return errors.New("audio: engine already running")
	}
	if e.muted.Load() {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.launch()
	return nil
}

// launch starts the backend once per engine. Callers hold mu.
func (e *Engine) launch() {
	if e.launched {
		return
	}
	e.launched = true

	backend, err := DetectBackend(e.cfg.SampleRate)
	if err != nil {
		e.logger.Info("running silent", "reason", err)
		e.silentMode.Store(true)
		return
	}

	cmd := exec.Command(backend.Path, backend.Args...) //#nosec G204 -- path from LookPath, fixed args
	stdin, err := cmd.StdinPipe()
	if err != nil {
		e.logger.Warn("backend pipe failed", "backend", backend.Name, "err", err)
		e.silentMode.Store(true)
		return
	}
	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		e.logger.Warn("backend start failed", "backend", backend.Name, "err", err)
		e.silentMode.Store(true)
		return
	}
	e.cmd = cmd
	e.stdin = stdin
	e.logger.Info("backend started", "backend", backend.Name, "rate", e.cfg.SampleRate)

	e.startMixer(stdin)

	e.wg.Add(1)
	go e.monitorProcess()
}

// startMixer attaches a mixer to w and watches it for write errors.
func (e *Engine) startMixer(w io.Writer) {
	m := NewMixer(w, e.bank, e.cfg.SampleRate)
	m.Start()
	e.mixer.Store(m)

	e.wg.Add(1)
	go e.monitorMixer(m)
}

func (e *Engine) monitorProcess() {
	defer e.wg.Done()
	if err := e.cmd.Wait(); err != nil && e.running.Load() && !e.silentMode.Load() {
		e.logger.Warn("backend exited", "err", err)
		e.silentMode.Store(true)
	}
}

func (e *Engine) monitorMixer(m *Mixer) {
	defer e.wg.Done()
	select {
	case err := <-m.Errors():
		e.logger.Warn("mixer stopped", "err", err)
		e.silentMode.Store(true)
	case <-m.done:
	}
}

// Stop terminates the mixer and backend. Safe to call more than once.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.mixer.Load()
	if m != nil {
		m.Stop()
	}
	if e.stdin != nil {
		_ = e.stdin.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	e.wg.Wait()

	if m != nil {
		played, dropped := m.Stats()
		e.logger.Debug("stopped", "played", played, "dropped", dropped)
	}
}

// Play queues an event. It never blocks.
func (e *Engine) Play(ev core.SoundEvent) {
	m := e.mixer.Load()
	if !e.IsEnabled() || m == nil {
		return
	}
	m.Play(ev)
}

// ToggleMute flips mute and reports whether sound is now on. Unmuting a
// running engine that started muted launches the backend.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	muted := !e.muted.Load()
	e.muted.Store(muted)
	if !muted && e.running.Load() {
		e.launch()
	}
	return !muted
}

// IsRunning reports whether Start has been called without Stop.
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// IsEnabled returns true if running, unmuted and attached to a backend.
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

var _ Muter = (*Engine)(nil)
var _ Player = NopPlayer{}
