package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Speed     float64 `yaml:"speed"`      // px/s, negative moves left
	EdgeSpeed float64 `yaml:"edge_speed"` // speed for random right-edge spawns, 0 = Speed
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Health    int     `yaml:"health"`

	// Ranged
	FireCooldown float64 `yaml:"fire_cooldown"` // seconds, 0 = never fires
	BulletSpeed  float64 `yaml:"bullet_speed"`

	Color color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy spawning configuration
type EnemyConfig struct {
	Types map[EnemyType]EnemyTypeConfig `yaml:"-"`

	Height             int     `yaml:"height"`      // nominal enemy sprite height
	EdgeMargin         int     `yaml:"edge_margin"` // distance of shooter lanes from top/bottom
	StaticShooterInset int     `yaml:"static_shooter_inset"`
	DefaultSpawnX      float64 `yaml:"default_spawn_x"`
	DespawnMargin      float64 `yaml:"despawn_margin"`
	BulletSize         float64 `yaml:"bullet_size"`
}

// PhysicsConfig contains rigid body configuration values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`

	// Circle bodies
	Density      float64 `yaml:"density"`
	Friction     float64 `yaml:"friction"`
	Restitution  float64 `yaml:"restitution"`
	CircleRadius float64 `yaml:"circle_radius"`

	// Box bodies
	BoxHalfWidth   float64 `yaml:"box_half_width"`
	BoxHalfHeight  float64 `yaml:"box_half_height"`
	BoxDensity     float64 `yaml:"box_density"`
	BoxFriction    float64 `yaml:"box_friction"`
	BoxRestitution float64 `yaml:"box_restitution"`

	// Mass in kg, overrides the mass derived from density
	BodyMass float64 `yaml:"body_mass"`

	// Stepping
	TimeStep           float64 `yaml:"time_step"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
	PixelsPerMeter     float64 `yaml:"pixels_per_meter"`
}

// SpawnerConfig contains level manager configuration
type SpawnerConfig struct {
	RandomInterval float64 `yaml:"random_interval"` // seconds between random spawns, 0 disables
}

// ShipConfig contains the player ship placement
type ShipConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Health int     `yaml:"health"`
}

// Default is the only renderer layer.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Enemy EnemyConfig
var Physics PhysicsConfig
var Spawner SpawnerConfig
var Ship ShipConfig

var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Grey   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global configuration value to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 480,
		TPS:    60,
	}

	Enemy = EnemyConfig{
		Height:             32,
		EdgeMargin:         20,
		StaticShooterInset: 100,
		DefaultSpawnX:      1000,
		DespawnMargin:      64,
		BulletSize:         6,
		Types: map[EnemyType]EnemyTypeConfig{
			EnemySmall: {
				Speed:  -50,
				Width:  32,
				Height: 32,
				Health: 1,
				Color:  Red,
			},
			EnemyShooter: {
				Speed:        -50,
				EdgeSpeed:    -120,
				Width:        32,
				Height:       32,
				Health:       2,
				FireCooldown: 1.2,
				BulletSpeed:  200,
				Color:        Orange,
			},
			EnemyStone: {
				Speed:  -50,
				Width:  32,
				Height: 32,
				Health: 10,
				Color:  Grey,
			},
			EnemyBig: {
				Speed:  -100,
				Width:  64,
				Height: 64,
				Health: 8,
				Color:  Purple,
			},
			EnemyPursuer: {
				Speed:  -100,
				Width:  32,
				Height: 32,
				Health: 2,
				Color:  Yellow,
			},
			EnemyStaticShooter: {
				Speed:        -100,
				Width:        32,
				Height:       32,
				Health:       4,
				FireCooldown: 0.8,
				BulletSpeed:  250,
				Color:        Blue,
			},
		},
	}

	Physics = PhysicsConfig{
		Gravity: 10,

		Density:      10,
		Friction:     0.4,
		Restitution:  1,
		CircleRadius: 6,

		BoxHalfWidth:   10,
		BoxHalfHeight:  10,
		BoxDensity:     10,
		BoxFriction:    0.4,
		BoxRestitution: 0.1,

		BodyMass: 100,

		TimeStep:           1.0 / 60.0,
		VelocityIterations: 8,
		PositionIterations: 3,
		PixelsPerMeter:     4,
	}

	Spawner = SpawnerConfig{
		RandomInterval: 1.5,
	}

	Ship = ShipConfig{
		X:      48,
		Y:      224,
		Width:  40,
		Height: 24,
		Health: 3,
	}
}

// Delta is the simulated duration of one tick in seconds.
func Delta() float64 {
	if C == nil || C.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(C.TPS)
}
