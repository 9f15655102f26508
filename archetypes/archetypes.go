package archetypes

import (
	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ship = newArchetype(
		tags.Ship,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Velocity,
		components.Health,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
		components.Velocity,
	)
	Body = newArchetype(
		tags.Body,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
