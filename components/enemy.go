package components

import (
	"github.com/automoto/jfighter/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type  config.EnemyType
	Speed float64 // px/s, negative moves left

	// Ranged
	Direction    config.BulletDirection
	FireCooldown float64 // seconds between shots, 0 = never fires
	FireTimer    float64 // seconds until next shot
	BulletSpeed  float64
}

// Fires reports whether the enemy shoots bullets.
func (e *EnemyData) Fires() bool {
	return e.FireCooldown > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
