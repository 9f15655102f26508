package factory

import (
	"errors"

	"github.com/ByteArena/box2d"
	"github.com/automoto/jfighter/archetypes"
	"github.com/automoto/jfighter/components"
	"github.com/automoto/jfighter/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoPhysicsWorld is returned when a body is requested before the
// physics world entity exists.
var ErrNoPhysicsWorld = errors.New("no physics world")

// CreatePhysicsWorld creates the Box2D world entity, optionally with a
// ground slab along the bottom of the screen.
func CreatePhysicsWorld(ecs *ecs.ECS, groundWidth float64) *donburi.Entry {
	entry := archetypes.PhysicsWorld.Spawn(ecs)
	world := physics.NewWorld()
	if groundWidth > 0 {
		physics.CreateGround(world, groundWidth)
	}
	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{World: world})
	return entry
}

// CreateCircle drops a circle body at screen position (x, y).
func CreateCircle(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	return createBody(ecs, x, y, physics.ShapeCircle, physics.CreateCircleBody)
}

// CreateBox drops a box body at screen position (x, y).
func CreateBox(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	return createBody(ecs, x, y, physics.ShapeBox, physics.CreateBoxBody)
}

func createBody(ecs *ecs.ECS, x, y float64, shape physics.Shape, create func(*box2d.B2World, float64, float64) *box2d.B2Body) (*donburi.Entry, error) {
	worldEntry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return nil, ErrNoPhysicsWorld
	}
	world := components.PhysicsWorld.Get(worldEntry).World

	wx, wy := physics.ToWorld(x, y)
	body := create(world, wx, wy)

	entry := archetypes.Body.Spawn(ecs)
	components.Body.SetValue(entry, components.BodyData{
		Body:  body,
		Shape: shape,
		X:     x,
		Y:     y,
		Angle: body.GetAngle(),
	})
	return entry, nil
}
