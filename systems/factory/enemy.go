package factory

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/jfighter/archetypes"
	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrUnknownEnemyType is returned for enemy types without a configuration.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// SpawnEnemy creates an enemy entering from the right edge of the screen at
// a random height. Shooters take the top or bottom lane and fire towards the
// middle; static shooters stop short of the edge and fire left.
func SpawnEnemy(ecs *ecs.ECS, enemyType cfg.EnemyType, rng *rand.Rand) (*donburi.Entry, error) {
	enemyCfg, ok := cfg.Enemy.Types[enemyType]
	if !ok {
		return nil, fmt.Errorf("spawn enemy: %w: %v", ErrUnknownEnemyType, enemyType)
	}
	if rng == nil {
		return nil, errors.New("spawn enemy: nil rng")
	}

	x := float64(cfg.C.Width)
	speed := enemyCfg.Speed
	if enemyCfg.EdgeSpeed != 0 {
		speed = enemyCfg.EdgeSpeed
	}
	direction := cfg.BulletLeft

	var y float64
	switch enemyType {
	case cfg.EnemyShooter:
		if rng.IntN(2) == 0 {
			y = float64(cfg.Enemy.EdgeMargin)
			direction = cfg.BulletDown
		} else {
			y = float64(cfg.C.Height - enemyCfg.Height - cfg.Enemy.EdgeMargin)
			direction = cfg.BulletUp
		}
	case cfg.EnemyStaticShooter:
		x -= float64(cfg.Enemy.StaticShooterInset)
		y = randomHeight(rng, enemyCfg)
	default:
		y = randomHeight(rng, enemyCfg)
	}

	return createEnemy(ecs, enemyType, enemyCfg, x, y, speed, direction), nil
}

// CreateEnemyAt creates an enemy at an exact screen position.
func CreateEnemyAt(ecs *ecs.ECS, enemyType cfg.EnemyType, x, y float64) (*donburi.Entry, error) {
	enemyCfg, ok := cfg.Enemy.Types[enemyType]
	if !ok {
		return nil, fmt.Errorf("create enemy: %w: %v", ErrUnknownEnemyType, enemyType)
	}

	direction := cfg.BulletLeft
	if enemyType == cfg.EnemyShooter {
		direction = cfg.BulletUp
	}

	return createEnemy(ecs, enemyType, enemyCfg, x, y, enemyCfg.Speed, direction), nil
}

// CreateEnemyAtHeight creates an enemy at height y in the default spawn column
// beyond the right edge of the screen.
func CreateEnemyAtHeight(ecs *ecs.ECS, enemyType cfg.EnemyType, y float64) (*donburi.Entry, error) {
	return CreateEnemyAt(ecs, enemyType, cfg.Enemy.DefaultSpawnX, y)
}

// randomHeight keeps the whole enemy on screen vertically.
func randomHeight(rng *rand.Rand, enemyCfg cfg.EnemyTypeConfig) float64 {
	span := cfg.C.Height - enemyCfg.Height
	if span <= 0 {
		return 0
	}
	return float64(rng.IntN(span))
}

func createEnemy(ecs *ecs.ECS, enemyType cfg.EnemyType, enemyCfg cfg.EnemyTypeConfig, x, y, speed float64, direction cfg.BulletDirection) *donburi.Entry {
	var enemy *donburi.Entry
	if enemyType == cfg.EnemyPursuer {
		enemy = archetypes.Enemy.Spawn(ecs, components.Pursuit)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	w, h := float64(enemyCfg.Width), float64(enemyCfg.Height)
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:         enemyType,
		Speed:        speed,
		Direction:    direction,
		FireCooldown: enemyCfg.FireCooldown,
		FireTimer:    enemyCfg.FireCooldown,
		BulletSpeed:  enemyCfg.BulletSpeed,
	})

	// Static shooters hold their column.
	velocity := components.VelocityData{X: speed}
	if enemyType == cfg.EnemyStaticShooter {
		velocity.X = 0
	}
	components.Velocity.SetValue(enemy, velocity)

	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyCfg.Health,
		Max:     enemyCfg.Health,
	})

	if enemyType == cfg.EnemyPursuer {
		target := donburi.Null
		if ship, ok := tags.Ship.First(ecs.World); ok {
			target = ship.Entity()
		}
		components.Pursuit.SetValue(enemy, components.PursuitData{Target: target})
	}

	return enemy
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
