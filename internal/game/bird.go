package game

import "image"

type Bird struct {
	X        float64 // fixed after spawn
	Y        float64
	Velocity float64

	Radius      float64
	Gravity     float64
	JumpImpulse float64

	Alive bool
}

func NewBird(x float64, p Params) *Bird {
	return &Bird{
		X:           x,
		Y:           float64(int(p.ScreenHeight) / 2),
		Radius:      p.BirdRadius,
		Gravity:     p.BirdGravity,
		JumpImpulse: p.BirdJumpImpulse,
		Alive:       true,
	}
}

// Update integrates one tick of gravity. Touching the top or bottom edge
// kills the bird; its position is not clamped.
func (b *Bird) Update(screenHeight float64) {
	if !b.Alive {
		return
	}
	b.Velocity += b.Gravity
	b.Y += b.Velocity

	if b.Y+b.Radius >= screenHeight || b.Y-b.Radius <= 0 {
		b.Alive = false
	}
}

// Jump replaces the current velocity with the jump impulse. It reports
// whether the bird was alive to jump.
func (b *Bird) Jump() bool {
	if !b.Alive {
		return false
	}
	b.Velocity = b.JumpImpulse
	return true
}

// Rect is the bounding square of the bird's circle. Collisions use it as is,
// so the corners outside the circle still hit.
func (b *Bird) Rect() image.Rectangle {
	minX := int(b.X - b.Radius)
	minY := int(b.Y - b.Radius)
	size := int(b.Radius * 2)
	return image.Rect(minX, minY, minX+size, minY+size)
}
