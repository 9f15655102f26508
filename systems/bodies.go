package systems

import (
	"github.com/automoto/jfighter/components"
	"github.com/automoto/jfighter/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies steps the physics world and copies body transforms back
// into screen space.
func UpdateBodies(ecs *ecs.ECS) {
	worldEntry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return
	}
	physics.Step(components.PhysicsWorld.Get(worldEntry).World)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.X, body.Y = physics.ToScreen(body.Body.GetPosition())
		body.Angle = body.Body.GetAngle()
	})
}
