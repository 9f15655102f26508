// Package physics generates rigid bodies in a Box2D world.
package physics

import (
	"github.com/ByteArena/box2d"
	cfg "github.com/automoto/jfighter/config"
)

// NewWorld creates a world with the configured gravity pulling towards -y.
func NewWorld() *box2d.B2World {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, -cfg.Physics.Gravity))
	return &world
}

// Step advances the world by one configured time step.
func Step(world *box2d.B2World) {
	world.Step(
		cfg.Physics.TimeStep,
		cfg.Physics.VelocityIterations,
		cfg.Physics.PositionIterations,
	)
}

// ToScreen converts a world position in meters (y up) to screen pixels (y down).
func ToScreen(v box2d.B2Vec2) (float64, float64) {
	ppm := cfg.Physics.PixelsPerMeter
	return v.X * ppm, float64(cfg.C.Height) - v.Y*ppm
}

// ToWorld converts screen pixels to a world position in meters.
func ToWorld(x, y float64) (float64, float64) {
	ppm := cfg.Physics.PixelsPerMeter
	return x / ppm, (float64(cfg.C.Height) - y) / ppm
}
