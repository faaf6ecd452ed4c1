package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// TrackBall returns the CPU paddle's velocity for this tick.
// The paddle chases the ball's vertical center at factor * maxSpeed and
// holds still while within band of it.
func TrackBall(paddle, ball core.Body, maxSpeed, factor, band float64) float64 {
	target := ball.Bounds().CenterY()
	center := paddle.Bounds().CenterY()

	switch {
	case center < target-band:
		return maxSpeed * factor
	case center > target+band:
		return -maxSpeed * factor
	default:
		return 0
	}
}
