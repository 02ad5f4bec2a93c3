package flappy

import (
	"github.com/UnfriendlySpider/minigames/internal/config"
	"github.com/UnfriendlySpider/minigames/internal/core"
)

// Bird is the player avatar: a fixed horizontal position with gravity-driven
// vertical motion and a circular hitbox.
type Bird struct {
	X      int
	Y      float64 // Center row, fractional for smooth integration
	Vel    float64 // Rows per second, positive is down
	Radius int

	phys config.FlappyPhysics
}

// NewBird creates a bird centered vertically on the screen.
func NewBird(cfg config.FlappyConfig, screenH int) *Bird {
	return &Bird{
		X:      cfg.Bird.X,
		Y:      float64(screenH) / 2.0,
		Vel:    0,
		Radius: cfg.Bird.Radius,
		phys:   cfg.Physics,
	}
}

// Flap replaces the vertical velocity with the upward impulse.
func (b *Bird) Flap() {
	b.Vel = b.phys.FlapImpulse
}

// Update integrates gravity over dt seconds, capping at terminal fall speed.
func (b *Bird) Update(dt float64) {
	b.Vel += b.phys.Gravity * dt
	if b.Vel > b.phys.MaxFallSpeed {
		b.Vel = b.phys.MaxFallSpeed
	}
	b.Y += b.Vel * dt
}

// Hitbox returns the bird's circular collision shape.
func (b *Bird) Hitbox() core.Circle {
	return core.NewCircle(b.X, int(b.Y), b.Radius)
}
