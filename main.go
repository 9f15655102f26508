package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/jfighter/assets"
	"github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/fonts"
	"github.com/automoto/jfighter/scenes"
	"github.com/automoto/jfighter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelIndex := flag.Int("level", -1, "Level to play (default: continue from saved progress)")
	seed := flag.Uint64("seed", 0, "Random seed for edge spawns (0 = time based)")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	// Initialize persistence and resume from the last level played
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if *levelIndex < 0 {
		*levelIndex = 0
		if saved, err := systems.LoadProgress(); err == nil && saved != nil {
			*levelIndex = saved.LastLevel
		}
	}
	if *levelIndex >= len(levels) {
		log.Printf("Warning: Level %d does not exist, starting at level 0", *levelIndex)
		*levelIndex = 0
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("jfighter")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	game := &Game{scene: scenes.NewShooterScene(levels[*levelIndex], *levelIndex, *seed)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
