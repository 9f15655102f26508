package systems

import (
	"math"

	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/systems/factory"
	"github.com/automoto/jfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs enemy behavior: pursuers steer towards their target and
// shooters fire on their cooldown. Movement itself happens in UpdateMovement.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := cfg.Delta()
	var shooters []*donburi.Entry

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)

		if e.HasComponent(components.Pursuit) {
			steer(ecs, e, enemy, dt)
		}

		if enemy.Fires() {
			enemy.FireTimer -= dt
			if enemy.FireTimer <= 0 {
				enemy.FireTimer += enemy.FireCooldown
				shooters = append(shooters, e)
			}
		}
	})

	for _, e := range shooters {
		enemy := components.Enemy.Get(e)
		factory.CreateBullet(ecs, e, enemy.Direction, enemy.BulletSpeed)
	}
}

// steer sets a pursuer's vertical velocity so that its center closes in on
// the target's center at the pursuer's own speed.
func steer(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, dt float64) {
	vel := components.Velocity.Get(e)
	pursuit := components.Pursuit.Get(e)

	if !ecs.World.Valid(pursuit.Target) {
		vel.Y = 0
		return
	}
	target := ecs.World.Entry(pursuit.Target)
	if !target.HasComponent(components.Object) {
		vel.Y = 0
		return
	}

	obj := components.Object.Get(e)
	targetObj := components.Object.Get(target)
	dy := (targetObj.Y + targetObj.H/2) - (obj.Y + obj.H/2)

	speed := math.Abs(enemy.Speed)
	if math.Abs(dy) <= speed*dt {
		vel.Y = dy / dt
		return
	}
	vel.Y = math.Copysign(speed, dy)
}
