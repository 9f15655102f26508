package systems

import (
	"math"

	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDespawn removes enemies and bullets that have left the playfield.
// The right bound sits past the default spawn column so enemies still
// entering from there are kept.
func UpdateDespawn(ecs *ecs.ECS) {
	var gone []*donburi.Entry
	collect := func(e *donburi.Entry) {
		if outOfBounds(components.Object.Get(e)) {
			gone = append(gone, e)
		}
	}
	tags.Enemy.Each(ecs.World, collect)
	tags.Bullet.Each(ecs.World, collect)

	for _, e := range gone {
		removeEntity(ecs, e)
	}
}

func outOfBounds(obj *components.ObjectData) bool {
	margin := cfg.Enemy.DespawnMargin
	right := math.Max(float64(cfg.C.Width), cfg.Enemy.DefaultSpawnX) + margin
	return obj.X+obj.W < -margin ||
		obj.X > right ||
		obj.Y+obj.H < -margin ||
		obj.Y > float64(cfg.C.Height)+margin
}
