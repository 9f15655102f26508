package systems

import (
	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var movers = donburi.NewQuery(filter.Contains(components.Object, components.Velocity))

// UpdateMovement integrates velocity into every moving collision object.
func UpdateMovement(ecs *ecs.ECS) {
	dt := cfg.Delta()
	movers.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vel := components.Velocity.Get(e)
		obj.X += vel.X * dt
		obj.Y += vel.Y * dt
		obj.Update()
	})
}

// removeEntity drops an entity and its collision object from the space.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
