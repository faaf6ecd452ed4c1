package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball is the square ball. Its velocity magnitude is held at speed after
// every direction change.
type Ball struct {
	rect  core.Rect
	vel   core.Vec2
	speed float64
}

// NewBall creates a stationary ball of the given size and speed budget.
// Call Serve before the first Update.
func NewBall(size, speed float64) *Ball {
	return &Ball{
		rect:  core.NewRect(0, 0, size, size),
		speed: speed,
	}
}

// Bounds returns the ball rectangle.
func (b *Ball) Bounds() core.Rect {
	return b.rect
}

// Velocity returns the current velocity.
func (b *Ball) Velocity() core.Vec2 {
	return b.vel
}

// SetVelocity overrides the velocity as is, without renormalising.
func (b *Ball) SetVelocity(v core.Vec2) {
	b.vel = v
}

// Speed returns the speed budget.
func (b *Ball) Speed() float64 {
	return b.speed
}

// MoveTo places the ball's top-left corner at (x, y).
func (b *Ball) MoveTo(x, y float64) {
	b.rect.X = x
	b.rect.Y = y
}

// CenterOn places the ball so its center is at (cx, cy).
func (b *Ball) CenterOn(cx, cy float64) {
	b.MoveTo(cx-b.rect.W/2, cy-b.rect.H/2)
}

// Serve centers the ball on (cx, cy) and picks a new direction.
// Horizontal direction is a coin flip; the vertical component is between
// minRise and maxRise of the horizontal one, with a random sign, so it is
// never zero and never dominant.
func (b *Ball) Serve(cx, cy float64, rng *rand.Rand, minRise, maxRise float64) {
	b.CenterOn(cx, cy)

	dirX := 1.0
	if rng.Intn(2) == 0 {
		dirX = -1
	}
	rise := minRise + rng.Float64()*(maxRise-minRise)
	if rng.Intn(2) == 0 {
		rise = -rise
	}

	b.vel = core.Vec2{X: dirX, Y: rise}.WithLength(b.speed)
}

// Update moves the ball by one tick of velocity.
func (b *Ball) Update() {
	b.rect.X += b.vel.X
	b.rect.Y += b.vel.Y
}
