package systems

import (
	"log"

	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/leveldata"
	"github.com/automoto/jfighter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner plays the level's wave script. Once the script runs out it
// spawns a random enemy type at the right edge every RandomInterval seconds.
func UpdateSpawner(ecs *ecs.ECS) {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(entry)
	dt := cfg.Delta()
	spawner.Elapsed += dt

	for !spawner.Done() && spawner.Waves[spawner.Next].At <= spawner.Elapsed {
		wave := spawner.Waves[spawner.Next]
		spawner.Next++
		if _, err := spawnWave(ecs, spawner, wave); err != nil {
			log.Printf("Warning: Could not spawn wave %d (%s at %.2fs): %v", spawner.Next-1, wave.Type, wave.At, err)
			continue
		}
		spawner.Spawned++
	}

	if !spawner.Done() || cfg.Spawner.RandomInterval <= 0 || spawner.Rand == nil {
		return
	}
	spawner.RandomTimer -= dt
	if spawner.RandomTimer > 0 {
		return
	}
	spawner.RandomTimer += cfg.Spawner.RandomInterval

	enemyType := cfg.EnemyTypes[spawner.Rand.IntN(len(cfg.EnemyTypes))]
	if _, err := factory.SpawnEnemy(ecs, enemyType, spawner.Rand); err != nil {
		log.Printf("Warning: Could not spawn random %s: %v", enemyType, err)
		return
	}
	spawner.Spawned++
}

func spawnWave(ecs *ecs.ECS, spawner *components.SpawnerData, wave leveldata.Wave) (*donburi.Entry, error) {
	switch {
	case wave.X != nil && wave.Y != nil:
		return factory.CreateEnemyAt(ecs, wave.Type, *wave.X, *wave.Y)
	case wave.Y != nil:
		return factory.CreateEnemyAtHeight(ecs, wave.Type, *wave.Y)
	default:
		return factory.SpawnEnemy(ecs, wave.Type, spawner.Rand)
	}
}
