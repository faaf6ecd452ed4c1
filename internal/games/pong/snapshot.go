package pong

import "math"

// Snapshot contains the complete state of a match.
// Uses primitive types only; positions and velocities are scaled by 1000.
type Snapshot struct {
	Tick       uint64
	BallX      int
	BallY      int
	BallVX     int
	BallVY     int
	LeftY      int
	RightY     int
	ScoreLeft  int
	ScoreRight int
	State      State
	Winner     Side
	ShowHelp   bool
}

const snapScale = 1000

func toFixed(v float64) int {
	return int(math.Round(v * snapScale))
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		BallX:      toFixed(g.ball.rect.X),
		BallY:      toFixed(g.ball.rect.Y),
		BallVX:     toFixed(g.ball.vel.X),
		BallVY:     toFixed(g.ball.vel.Y),
		LeftY:      toFixed(g.left.rect.Y),
		RightY:     toFixed(g.right.rect.Y),
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		State:      g.state,
		Winner:     g.winner,
		ShowHelp:   g.showHelp,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LeftY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RightY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScoreLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScoreRight) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)     //#nosec G115 -- hash computation

	for _, c := range []byte(snap.State) {
		h = h*31 + uint64(c)
	}
	if snap.ShowHelp {
		h = h*31 + 1
	}

	return h
}
