package factory

import (
	"math/rand/v2"

	"github.com/automoto/jfighter/archetypes"
	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner creates the level manager entity that plays back waves.
func CreateSpawner(ecs *ecs.ECS, waves []leveldata.Wave, rng *rand.Rand) *donburi.Entry {
	script := make([]leveldata.Wave, len(waves))
	copy(script, waves)
	leveldata.SortWaves(script)

	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Waves:       script,
		RandomTimer: cfg.Spawner.RandomInterval,
		Rand:        rng,
	})
	return spawner
}
