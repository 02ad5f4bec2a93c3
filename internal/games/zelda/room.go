package zelda

import (
	"github.com/UnfriendlySpider/minigames/internal/config"
	"github.com/UnfriendlySpider/minigames/internal/core"
)

// Room is a walled interior with an entrance on the left and a door gap in
// the right wall. Standing in the exit area leaves the building.
type Room struct {
	Walls    []core.Rect
	Entrance core.Rect // Spawn area just inside the left wall
	Exit     core.Rect // Door area in the right wall
}

// NewRoom builds the perimeter walls for the given screen size. The right
// wall is split in two segments to leave a door gap at mid height.
func NewRoom(screenW, screenH int, cfg config.ZeldaRoom) *Room {
	t := cfg.WallThickness
	doorH := cfg.DoorHeight
	doorY := screenH/2 - doorH/2

	r := &Room{}
	r.Walls = append(r.Walls,
		core.NewRect(0, 0, screenW, t),                  // top
		core.NewRect(0, screenH-t, screenW, t),          // bottom
		core.NewRect(0, 0, t, screenH),                  // left
		core.NewRect(screenW-t, 0, t, doorY),            // right, above door
		core.NewRect(screenW-t, doorY+doorH, t, screenH-(doorY+doorH)), // right, below door
	)

	r.Entrance = core.NewRect(t+2, screenH/2-1, 3, 2)
	r.Exit = core.NewRect(screenW-t-2, doorY, t+2, doorH)
	return r
}

// SpawnPoint returns the player start position inside the entrance.
func (r *Room) SpawnPoint() (float64, float64) {
	return float64(r.Entrance.X), float64(r.Entrance.Y)
}
