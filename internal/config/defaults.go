package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX:    200,
			StartY:    300,
			Width:     30,
			Height:    50,
			MoveSpeed: 5,
		},
		Physics: PhysicsConfig{
			Gravity:       0.2,
			BounceImpulse: -10,
		},
		Platforms: PlatformsConfig{
			Count:         5,
			Width:         60,
			Height:        10,
			Spacing:       100,
			LandingLeeway: 30,
		},
		Camera: CameraConfig{
			ScrollLine: 300,
		},
		Terminal: TerminalConfig{
			ReleaseTicks: 40,
		},
	}
}
