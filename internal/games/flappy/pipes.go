package flappy

import (
	"math/rand"

	"github.com/UnfriendlySpider/minigames/internal/config"
	"github.com/UnfriendlySpider/minigames/internal/core"
)

// Pipe is a vertical obstacle pair with a gap for the bird to pass through.
// X is fractional so slow scroll speeds still accumulate between ticks.
type Pipe struct {
	X         float64 // Left edge
	GapY      int     // Row where the gap starts
	GapHeight int
	Passed    bool // Whether the bird has been scored for this pipe
}

// TopRect returns the collision rectangle of the upper pipe section.
func (p Pipe) TopRect(width int) core.Rect {
	return core.NewRect(int(p.X), 0, width, p.GapY)
}

// BottomRect returns the collision rectangle of the lower pipe section,
// extending down to the ground row.
func (p Pipe) BottomRect(width, groundY int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(int(p.X), bottomY, width, groundY-bottomY)
}

// PipeField handles spawning, scrolling, scoring, and removal of pipes.
type PipeField struct {
	pipes   []Pipe
	rng     *rand.Rand
	screenW int
	screenH int
	cfg     config.FlappyConfig

	speedScale float64 // Difficulty multiplier on scroll speed
	gapDelta   int     // Difficulty adjustment to the gap size
}

// NewPipeField creates a pipe field seeded for deterministic runs.
func NewPipeField(seed int64, screenW, screenH int, cfg config.FlappyConfig) *PipeField {
	f := &PipeField{
		pipes:      make([]Pipe, 0, 8),
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		speedScale: 1.0,
	}
	f.Reset(seed)
	return f
}

// Reset clears all pipes and reseeds the RNG.
func (f *PipeField) Reset(seed int64) {
	f.pipes = f.pipes[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// SetDifficulty adjusts scroll speed and gap size for the next pipes.
func (f *PipeField) SetDifficulty(speedScale float64, gapDelta int) {
	f.speedScale = speedScale
	f.gapDelta = gapDelta
}

// Update scrolls pipes left by dt seconds, spawns and removes pipes as
// needed, and returns the number of pipes the bird passed this tick.
func (f *PipeField) Update(dt float64, birdRightX int) int {
	dx := f.cfg.Physics.PipeSpeed * f.speedScale * dt
	for i := range f.pipes {
		f.pipes[i].X -= dx
	}

	width := f.cfg.Pipes.Width

	passed := 0
	for i := range f.pipes {
		if !f.pipes[i].Passed && int(f.pipes[i].X)+width < birdRightX {
			f.pipes[i].Passed = true
			passed++
		}
	}

	alive := f.pipes[:0]
	for _, p := range f.pipes {
		if int(p.X)+width > 0 {
			alive = append(alive, p)
		}
	}
	f.pipes = alive

	if len(f.pipes) == 0 || f.pipes[len(f.pipes)-1].X < float64(f.screenW-f.cfg.Pipes.Spacing) {
		f.spawn()
	}

	return passed
}

// spawn creates a new pipe just past the right edge of the screen.
func (f *PipeField) spawn() {
	gap := f.cfg.Pipes.GapSize + f.gapDelta
	if gap < 3 {
		gap = 3
	}

	minGapY := f.cfg.Pipes.TopMargin
	maxGapY := f.screenH - 1 - f.cfg.Pipes.BottomMargin - gap
	if maxGapY < minGapY {
		maxGapY = minGapY // Very small screens
	}

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + f.rng.Intn(maxGapY-minGapY+1)
	}

	f.pipes = append(f.pipes, Pipe{
		X:         float64(f.screenW),
		GapY:      gapY,
		GapHeight: gap,
	})
}

// Pipes returns the current pipes, leftmost first.
func (f *PipeField) Pipes() []Pipe {
	return f.pipes
}

// Collides tests the bird's hitbox against every pipe section.
func (f *PipeField) Collides(c core.Circle, groundY int) bool {
	width := f.cfg.Pipes.Width
	for _, p := range f.pipes {
		if c.IntersectsRect(p.TopRect(width)) || c.IntersectsRect(p.BottomRect(width, groundY)) {
			return true
		}
	}
	return false
}
