package factory

import (
	"github.com/automoto/jfighter/archetypes"
	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShip places the player ship. Pursuers spawned afterwards chase it.
func CreateShip(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ship := archetypes.Ship.Spawn(ecs)

	w, h := float64(cfg.Ship.Width), float64(cfg.Ship.Height)
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(ship, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvShip)
	obj.Data = ship
	addToSpace(ecs, obj)

	components.Health.SetValue(ship, components.HealthData{Current: cfg.Ship.Health, Max: cfg.Ship.Health})
	return ship
}
