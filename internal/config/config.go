// Package config provides YAML-based game configuration loading for the
// collection. Each game has its own config type with an embedded default,
// overridable from a user or local configs directory.
package config

// FlappyConfig contains all configuration for the Flappy Bird clone.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Bird    FlappyBird    `yaml:"bird"`
}

// FlappyPhysics defines the bird's movement parameters, in screen rows per
// second (squared for gravity).
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	PipeSpeed    float64 `yaml:"pipe_speed"`
}

// FlappyPipes defines obstacle geometry.
type FlappyPipes struct {
	Width        int `yaml:"width"`
	Spacing      int `yaml:"spacing"`
	GapSize      int `yaml:"gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyBird defines the player hitbox.
type FlappyBird struct {
	X      int `yaml:"x"`
	Radius int `yaml:"radius"`
}

// ZeldaConfig contains all configuration for the top-down movement demo.
type ZeldaConfig struct {
	Player ZeldaPlayer `yaml:"player"`
	Room   ZeldaRoom   `yaml:"room"`
}

// ZeldaPlayer defines movement speed (cells per second) and hitbox size.
type ZeldaPlayer struct {
	Speed  float64 `yaml:"speed"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// ZeldaRoom defines the building interior geometry.
type ZeldaRoom struct {
	WallThickness   int     `yaml:"wall_thickness"`
	DoorHeight      int     `yaml:"door_height"`
	ExitHoldSeconds float64 `yaml:"exit_hold_seconds"`
}

// AdventureConfig contains all configuration for the text adventure.
type AdventureConfig struct {
	SaveDir      string `yaml:"save_dir"`
	MaxSaveSlots int    `yaml:"max_save_slots"`
	MaxInventory int    `yaml:"max_inventory"`
	StartHealth  int    `yaml:"start_health"`
	StartRoom    string `yaml:"start_room"`
	Prompt       string `yaml:"prompt"`
}
