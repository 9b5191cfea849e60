package game

import "testing"

func TestBirdSpawn(t *testing.T) {
	b := NewBird(Player1X, DefaultParams())
	if b.X != 300 || b.Y != 540 || b.Velocity != 0 || !b.Alive {
		t.Fatalf("spawned bird = %+v", b)
	}
}

func TestBirdUpdateAppliesGravity(t *testing.T) {
	b := NewBird(Player1X, DefaultParams())
	b.Update(ScreenHeight)
	if b.Velocity != BirdGravity {
		t.Fatalf("velocity after 1 tick = %v, want %v", b.Velocity, BirdGravity)
	}
	if b.Y != 540+BirdGravity {
		t.Fatalf("y after 1 tick = %v, want %v", b.Y, 540+BirdGravity)
	}
	x := b.X
	for i := 0; i < 5; i++ {
		b.Update(ScreenHeight)
	}
	if b.X != x {
		t.Fatalf("x moved from %v to %v", x, b.X)
	}
}

func TestBirdDiesAtBounds(t *testing.T) {
	tests := []struct {
		name     string
		y, vel   float64
		wantDead bool
	}{
		{"hits floor", ScreenHeight - BirdRadius - 1, 0, true},
		{"hits ceiling", BirdRadius + 5, -10, true},
		{"mid air", 540, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBird(Player1X, DefaultParams())
			b.Y, b.Velocity = tt.y, tt.vel
			b.Update(ScreenHeight)
			if b.Alive == tt.wantDead {
				t.Fatalf("alive = %v, want %v (y=%v)", b.Alive, !tt.wantDead, b.Y)
			}
		})
	}
}

func TestBirdNotClampedOnDeath(t *testing.T) {
	b := NewBird(Player1X, DefaultParams())
	b.Y, b.Velocity = ScreenHeight-BirdRadius-1, 20
	b.Update(ScreenHeight)
	if b.Alive {
		t.Fatalf("expected bird to die")
	}
	if b.Y <= ScreenHeight-BirdRadius {
		t.Fatalf("y = %v was clamped", b.Y)
	}
}

func TestDeadBirdIsFrozen(t *testing.T) {
	b := NewBird(Player1X, DefaultParams())
	b.Alive = false
	b.Velocity = 3
	y := b.Y
	b.Update(ScreenHeight)
	if b.Y != y || b.Velocity != 3 {
		t.Fatalf("dead bird moved: y=%v vel=%v", b.Y, b.Velocity)
	}
	if b.Jump() {
		t.Fatalf("dead bird jumped")
	}
	if b.Velocity != 3 || b.Alive {
		t.Fatalf("jump changed dead bird: %+v", b)
	}
}

func TestJumpOverridesVelocity(t *testing.T) {
	for _, vel := range []float64{-30, -18, 0, 7.5, 40} {
		b := NewBird(Player2X, DefaultParams())
		b.Velocity = vel
		if !b.Jump() {
			t.Fatalf("alive bird did not jump")
		}
		if b.Velocity != BirdJumpImpulse {
			t.Fatalf("velocity after jump from %v = %v, want %v", vel, b.Velocity, BirdJumpImpulse)
		}
	}
}

func TestBirdRectIsBoundingSquare(t *testing.T) {
	b := NewBird(Player1X, DefaultParams())
	r := b.Rect()
	if r.Min.X != 265 || r.Min.Y != 505 || r.Dx() != 70 || r.Dy() != 70 {
		t.Fatalf("rect = %v", r)
	}
}
