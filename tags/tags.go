package tags

import "github.com/yohamta/donburi"

var (
	Ship    = donburi.NewTag().SetName("Ship")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Bullet  = donburi.NewTag().SetName("Bullet")
	Body    = donburi.NewTag().SetName("Body")
	Spawner = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for collision queries
const (
	ResolvShip   = "Ship"
	ResolvEnemy  = "Enemy"
	ResolvBullet = "Bullet"
)
