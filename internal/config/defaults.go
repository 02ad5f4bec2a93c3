package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/zelda.yaml
var defaultZeldaYAML []byte

//go:embed defaults/adventure.yaml
var defaultAdventureYAML []byte

// DefaultFlappyConfig returns the hardcoded Flappy Bird defaults, used when
// even the embedded YAML fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      40.0,
			FlapImpulse:  -14.0,
			MaxFallSpeed: 20.0,
			PipeSpeed:    16.0,
		},
		Pipes: FlappyPipes{
			Width:        5,
			Spacing:      32,
			GapSize:      8,
			TopMargin:    2,
			BottomMargin: 2,
		},
		Bird: FlappyBird{
			X:      10,
			Radius: 1,
		},
	}
}

// DefaultZeldaConfig returns the hardcoded movement demo defaults.
func DefaultZeldaConfig() ZeldaConfig {
	return ZeldaConfig{
		Player: ZeldaPlayer{
			Speed:  18.0,
			Width:  2,
			Height: 1,
		},
		Room: ZeldaRoom{
			WallThickness:   1,
			DoorHeight:      4,
			ExitHoldSeconds: 0.6,
		},
	}
}

// DefaultAdventureConfig returns the hardcoded text adventure defaults.
func DefaultAdventureConfig() AdventureConfig {
	return AdventureConfig{
		SaveDir:      "saves",
		MaxSaveSlots: 5,
		MaxInventory: 10,
		StartHealth:  100,
		StartRoom:    "start_room",
		Prompt:       "> ",
	}
}
