// Package pong implements the two-paddle Pong simulation.
// The left paddle follows the human player; the right paddle is driven by
// the CPU tracker, or by a second player in two-player mode.
//
// The package is pure: it consumes input frames and elapsed time and
// produces draw lists and sound events. Adapters own windows, terminals
// and audio devices.
package pong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// TickRate is the fixed simulation rate. Every configured speed is in
// field units per tick at this rate, whatever rate the adapter draws at.
const TickRate = 60

// TickInterval is the length of one simulation tick.
const TickInterval = time.Second / TickRate

// StepResult describes what happened during one Step or Advance call.
type StepResult struct {
	State      State
	Winner     Side
	ScoreLeft  int
	ScoreRight int
	Events     []core.SoundEvent // Sound triggers in the order they occurred
	Ticks      int               // Simulation ticks actually run
	Quit       bool              // Quit was requested; the caller should stop the loop
}

// Game holds the complete match state.
type Game struct {
	cfg   config.PongConfig
	field core.Rect // Logical window
	area  core.Rect // Play area, field inset by the margin

	left  *Paddle
	right *Paddle
	ball  *Ball

	scoreLeft  int
	scoreRight int
	state      State
	winner     Side
	showHelp   bool
	hints      []string

	rng       *rand.Rand
	stepper   *core.Stepper
	tickCount uint64
}

// New creates a game from a validated configuration.
// The game is seeded with core.DefaultConfig(); call Reset to reseed.
func New(cfg config.PongConfig) *Game {
	field := core.NewRect(0, 0, cfg.Field.Width, cfg.Field.Height)
	area := field.Inset(cfg.Field.Margin)

	g := &Game{
		cfg:      cfg,
		field:    field,
		area:     area,
		left:     NewPaddle(area.Left()+cfg.Paddles.Inset, 0, cfg.Paddles.Width, cfg.Paddles.Height),
		right:    NewPaddle(area.Right()-cfg.Paddles.Inset-cfg.Paddles.Width, 0, cfg.Paddles.Width, cfg.Paddles.Height),
		ball:     NewBall(cfg.Ball.Size, cfg.Ball.Speed),
		showHelp: cfg.Gameplay.ShowHelp,
		stepper:  core.NewStepper(TickInterval, core.DefaultMaxSteps),
	}
	g.hints = DefaultHints(cfg.Gameplay.WinScore)
	g.Reset(core.DefaultConfig())
	return g
}

// Reset reseeds the random source and starts a fresh match. The runtime
// frame rate does not change the tick length.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, not security
	g.stepper.Reset()
	g.tickCount = 0
	g.Restart()
}

// Restart zeroes the scores, recenters the paddles, serves a new ball and
// returns to play. It is what the reset key does, from any state.
func (g *Game) Restart() {
	g.scoreLeft = 0
	g.scoreRight = 0
	g.winner = SideNone
	g.state = Next(g.state, TriggerReset)

	paddleY := g.field.CenterY() - g.cfg.Paddles.Height/2
	g.left.MoveTo(g.left.rect.X, paddleY)
	g.right.MoveTo(g.right.rect.X, paddleY)
	g.left.SetVelocity(0)
	g.right.SetVelocity(0)

	g.serve()
}

// serve puts the ball back at the field center with a fresh direction.
func (g *Game) serve() {
	cx, cy := g.field.Center()
	g.ball.Serve(cx, cy, g.rng, g.cfg.Ball.MinRise, g.cfg.Ball.MaxRise)
}

// Step runs one control pass and exactly one simulation tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	if quit := g.applyControls(in); quit {
		return g.result(nil, 0, true)
	}
	events, ran := g.tick(in)
	return g.result(events, boolToInt(ran), false)
}

// Advance applies edge-triggered controls once, then runs as many fixed
// TickRate ticks as elapsed time allows. Held controls apply to every tick.
func (g *Game) Advance(in core.InputFrame, elapsed time.Duration) StepResult {
	if quit := g.applyControls(in); quit {
		return g.result(nil, 0, true)
	}

	held := in.HeldOnly()
	n := g.stepper.Advance(elapsed)
	var events []core.SoundEvent
	ticks := 0
	for range n {
		ev, ran := g.tick(held)
		events = append(events, ev...)
		if ran {
			ticks++
		}
	}
	return g.result(events, ticks, false)
}

// applyControls handles the edge-triggered actions. Reports whether quit
// was requested.
func (g *Game) applyControls(in core.InputFrame) bool {
	if in.Has(core.ActionQuit) {
		return true
	}
	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if in.Has(core.ActionReset) {
		g.Restart()
	}
	if in.Has(core.ActionPause) {
		g.state = Next(g.state, TriggerPause)
	}
	return false
}

// tick runs one simulation step. Reports whether anything moved.
func (g *Game) tick(in core.InputFrame) ([]core.SoundEvent, bool) {
	g.steer(in)

	if g.state != StatePlaying {
		return nil, false
	}
	g.tickCount++

	var events []core.SoundEvent

	g.left.Update(g.area)
	g.right.Update(g.area)

	g.ball.Update()
	if BounceWalls(g.ball, g.area) {
		events = append(events, core.SoundWallBounce)
	}
	// Left is checked first; on a double contact the right paddle wins.
	if BouncePaddle(g.ball, g.left, g.cfg.Ball.SpinBoost) {
		events = append(events, core.SoundPaddleHit)
	}
	if BouncePaddle(g.ball, g.right, g.cfg.Ball.SpinBoost) {
		events = append(events, core.SoundPaddleHit)
	}

	if g.checkScore() {
		events = append(events, core.SoundScore)
	}
	g.checkWin()

	return events, true
}

// steer sets both paddle velocities from input or the CPU.
func (g *Game) steer(in core.InputFrame) {
	speed := g.cfg.Paddles.Speed
	g.left.SetVelocity(in.Axis(core.ActionUp, core.ActionDown) * speed)

	if g.cfg.Gameplay.TwoPlayer {
		g.right.SetVelocity(in.Axis(core.ActionUp2, core.ActionDown2) * speed)
		return
	}
	g.right.SetVelocity(TrackBall(g.right, g.ball, speed, g.cfg.CPU.SpeedFactor, g.cfg.CPU.DeadBand))
}

// checkScore awards a point once the ball is wholly past a side of the
// play area by more than the tolerance, then serves again.
func (g *Game) checkScore() bool {
	r := g.ball.rect
	tol := g.cfg.Ball.ScoreTolerance

	switch {
	case r.Right() < g.area.Left()-tol:
		g.scoreRight++
	case r.Left() > g.area.Right()+tol:
		g.scoreLeft++
	default:
		return false
	}
	g.serve()
	return true
}

// checkWin ends the match when a score reaches the threshold. Left is
// checked first.
func (g *Game) checkWin() {
	win := g.cfg.Gameplay.WinScore
	switch {
	case g.scoreLeft >= win:
		g.winner = SideLeft
	case g.scoreRight >= win:
		g.winner = SideRight
	default:
		return
	}
	g.state = Next(g.state, TriggerWin)
}

func (g *Game) result(events []core.SoundEvent, ticks int, quit bool) StepResult {
	return StepResult{
		State:      g.state,
		Winner:     g.winner,
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		Events:     events,
		Ticks:      ticks,
		Quit:       quit,
	}
}

// State returns the current match state.
func (g *Game) State() State {
	return g.state
}

// Winner returns the winning side, or SideNone while no one has won.
func (g *Game) Winner() Side {
	return g.winner
}

// Scores returns the left and right scores.
func (g *Game) Scores() (int, int) {
	return g.scoreLeft, g.scoreRight
}

// ShowHelp reports whether help text is visible.
func (g *Game) ShowHelp() bool {
	return g.showHelp
}

// SetHints replaces the help lines drawn while help is visible.
// Adapters use this to describe their own key bindings.
func (g *Game) SetHints(lines ...string) {
	g.hints = append([]string(nil), lines...)
}

// Field returns the logical window rectangle.
func (g *Game) Field() core.Rect {
	return g.field
}

// PlayArea returns the rectangle paddles and ball move within.
func (g *Game) PlayArea() core.Rect {
	return g.area
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
