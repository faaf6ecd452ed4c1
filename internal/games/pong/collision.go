package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// BounceWalls reflects the ball off the top or bottom of area.
// The ball is clamped back inside and vy inverted. Reports whether a
// bounce happened.
func BounceWalls(b *Ball, area core.Rect) bool {
	r := b.rect
	// Strict, like the paddle overlap test: a ball resting on the wall is inside.
	switch {
	case r.Top() < area.Top():
		b.rect.Y = area.Top()
	case r.Bottom() > area.Bottom():
		b.rect.Y = area.Bottom() - r.H
	default:
		return false
	}
	b.vel.Y = -b.vel.Y
	return true
}

// BouncePaddle reflects the ball off p if they overlap.
//
// The ball is pushed out to the paddle face it approached from, vx is
// inverted and vy is set from where on the paddle it struck: center hits
// leave nearly straight, edge hits leave steep. The result is renormalised
// to the ball's speed budget.
func BouncePaddle(b *Ball, p *Paddle, spinBoost float64) bool {
	if !core.Overlaps(b, p) {
		return false
	}

	pr := p.rect
	if b.vel.X < 0 {
		b.rect.X = pr.Right()
	} else {
		b.rect.X = pr.Left() - b.rect.W
	}

	speed := b.Speed()
	offset := (b.rect.CenterY() - pr.CenterY()) / (pr.H / 2)
	v := core.Vec2{X: -b.vel.X, Y: (speed + spinBoost) * offset}
	b.vel = v.WithLength(speed)
	return true
}
