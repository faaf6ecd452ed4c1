package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a vertically moving bat.
type Paddle struct {
	rect core.Rect
	vel  float64 // Units per tick, positive is down
}

// NewPaddle creates a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, w, h float64) *Paddle {
	return &Paddle{rect: core.NewRect(x, y, w, h)}
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return p.rect
}

// SetVelocity sets the vertical speed applied on the next Update.
func (p *Paddle) SetVelocity(v float64) {
	p.vel = v
}

// Velocity returns the current vertical speed.
func (p *Paddle) Velocity() float64 {
	return p.vel
}

// MoveTo places the paddle's top-left corner at (x, y).
func (p *Paddle) MoveTo(x, y float64) {
	p.rect.X = x
	p.rect.Y = y
}

// Update moves the paddle by its velocity and clamps it inside bounds vertically.
func (p *Paddle) Update(bounds core.Rect) {
	p.rect.Y += p.vel
	if p.rect.Top() < bounds.Top() {
		p.rect.Y = bounds.Top()
	}
	if p.rect.Bottom() > bounds.Bottom() {
		p.rect.Y = bounds.Bottom() - p.rect.H
	}
}
