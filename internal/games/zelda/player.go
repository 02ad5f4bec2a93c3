package zelda

import (
	"math"

	"github.com/UnfriendlySpider/minigames/internal/core"
)

// Facing is the player's last movement direction, used for rendering.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// Player is the controllable avatar: fractional position, velocity in cells
// per second, and a rectangular hitbox.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   int
	Speed  float64
	Facing Facing
	Moving bool
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y float64, w, h int, speed float64) *Player {
	return &Player{X: x, Y: y, W: w, H: h, Speed: speed, Facing: FacingDown}
}

// SetPosition moves the player and zeroes its velocity.
func (p *Player) SetPosition(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.Moving = false
}

// SetDirection converts held direction flags into a velocity. Diagonals are
// normalized so they are no faster than cardinal movement. Facing follows the
// dominant axis.
func (p *Player) SetDirection(up, down, left, right bool) {
	dx, dy := 0.0, 0.0
	if up {
		dy--
	}
	if down {
		dy++
	}
	if left {
		dx--
	}
	if right {
		dx++
	}

	length := math.Hypot(dx, dy)
	if length == 0 {
		p.VX = 0
		p.VY = 0
		p.Moving = false
		return
	}

	nx := dx / length
	ny := dy / length
	p.VX = nx * p.Speed
	p.VY = ny * p.Speed
	p.Moving = true

	if math.Abs(nx) > math.Abs(ny) {
		if nx < 0 {
			p.Facing = FacingLeft
		} else {
			p.Facing = FacingRight
		}
	} else {
		if ny < 0 {
			p.Facing = FacingUp
		} else {
			p.Facing = FacingDown
		}
	}
}

// Update integrates movement over dt seconds with axis-separated collision:
// the X move and Y move are tested independently so the player slides along
// walls instead of sticking to them.
func (p *Player) Update(dt float64, obstacles []core.Rect) {
	newX := p.X + p.VX*dt
	newY := p.Y + p.VY*dt

	rectX := core.NewRect(int(newX), int(p.Y), p.W, p.H)
	if !collides(rectX, obstacles) {
		p.X = newX
	} else {
		p.VX = 0
	}

	rectY := core.NewRect(int(p.X), int(newY), p.W, p.H)
	if !collides(rectY, obstacles) {
		p.Y = newY
	} else {
		p.VY = 0
	}
}

// Rect returns the player's current hitbox.
func (p *Player) Rect() core.Rect {
	return core.NewRect(int(p.X), int(p.Y), p.W, p.H)
}

func collides(r core.Rect, obstacles []core.Rect) bool {
	for _, o := range obstacles {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
