package components

import (
	"github.com/automoto/jfighter/config"
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Direction config.BulletDirection
	Owner     donburi.Entity
}

var Bullet = donburi.NewComponentType[BulletData]()
