// Package config provides YAML-based configuration loading for the jumper game.
package config

// JumperConfig contains all tunables for the endless jumper.
type JumperConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Camera    CameraConfig    `yaml:"camera"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// FieldConfig defines the play area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player box, its spawn point and horizontal speed.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Added to vy every tick
	BounceImpulse float64 `yaml:"bounce_impulse"` // vy after a landing (negative = up)
}

// PlatformsConfig defines platform size, count and generation spacing.
type PlatformsConfig struct {
	Count         int     `yaml:"count"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Spacing       float64 `yaml:"spacing"`        // Vertical gap between generated platforms
	LandingLeeway float64 `yaml:"landing_leeway"` // Horizontal slack left of a platform
}

// CameraConfig defines when the world scrolls.
type CameraConfig struct {
	ScrollLine float64 `yaml:"scroll_line"` // Player y above which the world scrolls down
}

// TerminalConfig holds settings that only apply to the terminal frontend.
type TerminalConfig struct {
	// ReleaseTicks is how many ticks a horizontal key counts as held after its
	// last press or auto-repeat. Terminals never report key releases.
	ReleaseTicks int `yaml:"release_ticks"`
}
