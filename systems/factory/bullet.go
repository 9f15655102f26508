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

// CreateBullet fires a bullet from the center of owner in the given direction.
func CreateBullet(ecs *ecs.ECS, owner *donburi.Entry, direction cfg.BulletDirection, speed float64) *donburi.Entry {
	ownerObj := components.Object.Get(owner)
	size := cfg.Enemy.BulletSize
	x := ownerObj.X + ownerObj.W/2 - size/2
	y := ownerObj.Y + ownerObj.H/2 - size/2

	bullet := archetypes.Bullet.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size)
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvBullet)
	obj.Data = bullet
	addToSpace(ecs, obj)

	dx, dy := direction.Vector()
	components.Velocity.SetValue(bullet, components.VelocityData{X: dx * speed, Y: dy * speed})
	components.Bullet.SetValue(bullet, components.BulletData{
		Direction: direction,
		Owner:     owner.Entity(),
	})
	return bullet
}
