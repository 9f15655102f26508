package components

import (
	"math/rand/v2"

	"github.com/automoto/jfighter/leveldata"
	"github.com/yohamta/donburi"
)

// SpawnerData is the level manager state: a time-ordered wave script played
// back against the elapsed level time, then random edge spawns.
type SpawnerData struct {
	Waves       []leveldata.Wave
	Next        int     // index of the next wave to spawn
	Elapsed     float64 // seconds since the level started
	RandomTimer float64 // seconds until the next random spawn
	Spawned     int     // enemies created so far
	Rand        *rand.Rand
}

// Done reports whether every scripted wave has been spawned.
func (s *SpawnerData) Done() bool {
	return s.Next >= len(s.Waves)
}

var Spawner = donburi.NewComponentType[SpawnerData]()
