package scenes

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/leveldata"
	"github.com/automoto/jfighter/systems"
	"github.com/automoto/jfighter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShooterScene plays one level: scripted and random enemy spawns, the
// player ship as the pursuers' target, and a rigid body sandbox underneath.
type ShooterScene struct {
	ecs        *ecs.ECS
	level      *leveldata.Level
	levelIndex int
	rng        *rand.Rand
	spawner    *donburi.Entry
	once       sync.Once
}

func NewShooterScene(level *leveldata.Level, levelIndex int, seed uint64) *ShooterScene {
	return &ShooterScene{
		level:      level,
		levelIndex: levelIndex,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *ShooterScene) Update() error {
	s.once.Do(s.configure)

	if ebiten.IsWindowBeingClosed() {
		s.recordRun()
		return ebiten.Termination
	}

	s.ecs.Update()
	return nil
}

func (s *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *ShooterScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateSpawner)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateBodies)
	ecs.AddSystem(systems.UpdateDespawn)

	ecs.AddRenderer(cfg.Default, DrawBodies)
	ecs.AddRenderer(cfg.Default, DrawObjects)
	ecs.AddRenderer(cfg.Default, s.drawHUD)

	s.ecs = ecs

	spaceWidth := int(math.Max(float64(cfg.C.Width), cfg.Enemy.DefaultSpawnX)) + 128
	factory.CreateSpace(ecs, spaceWidth, cfg.C.Height, 16, 16)
	factory.CreateShip(ecs, cfg.Ship.X, cfg.Ship.Y)

	factory.CreatePhysicsWorld(ecs, float64(cfg.C.Width)/cfg.Physics.PixelsPerMeter)
	for i, x := range []float64{200, 320, 440, 560} {
		create := factory.CreateCircle
		if i%2 == 1 {
			create = factory.CreateBox
		}
		if _, err := create(ecs, x, float64(40+30*i)); err != nil {
			log.Printf("Warning: Could not create body: %v", err)
		}
	}

	s.spawner = factory.CreateSpawner(ecs, s.level.Waves, s.rng)
}

func (s *ShooterScene) recordRun() {
	if s.spawner == nil || !s.spawner.Valid() {
		return
	}
	spawner := components.Spawner.Get(s.spawner)
	if err := systems.RecordRun(s.levelIndex, spawner.Elapsed, spawner.Spawned); err != nil {
		log.Printf("Warning: Could not record run: %v", err)
	}
}
