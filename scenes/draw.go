package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/jfighter/components"
	cfg "github.com/automoto/jfighter/config"
	"github.com/automoto/jfighter/fonts"
	"github.com/automoto/jfighter/physics"
	"github.com/automoto/jfighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawObjects fills the collision rectangle of the ship, enemies and bullets.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), objectColor(e), false)
	})
}

func objectColor(e *donburi.Entry) color.Color {
	switch {
	case e.HasComponent(tags.Ship):
		return cfg.Green
	case e.HasComponent(tags.Bullet):
		return cfg.White
	case e.HasComponent(components.Enemy):
		if tc, ok := cfg.Enemy.Types[components.Enemy.Get(e).Type]; ok {
			return tc.Color
		}
	}
	return cfg.White
}

// DrawBodies outlines the rigid bodies of the physics sandbox.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	ppm := cfg.Physics.PixelsPerMeter
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		switch body.Shape {
		case physics.ShapeCircle:
			r := cfg.Physics.CircleRadius * ppm
			vector.StrokeCircle(screen, float32(body.X), float32(body.Y), float32(r), 1, cfg.Grey, true)
		case physics.ShapeBox:
			drawBox(screen, body, cfg.Physics.BoxHalfWidth*ppm, cfg.Physics.BoxHalfHeight*ppm)
		}
	})
}

func drawBox(screen *ebiten.Image, body *components.BodyData, hw, hh float64) {
	sin, cos := math.Sincos(body.Angle)
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var xs, ys [4]float32
	for i, c := range corners {
		// Body angles are counter-clockwise with y up; the screen has y down.
		xs[i] = float32(body.X + c[0]*cos - c[1]*sin)
		ys[i] = float32(body.Y - (c[0]*sin + c[1]*cos))
	}
	for i := range corners {
		j := (i + 1) % len(corners)
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 1, cfg.Grey, true)
	}
}

func (s *ShooterScene) drawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if s.spawner == nil || !s.spawner.Valid() {
		return
	}
	spawner := components.Spawner.Get(s.spawner)

	enemies := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) { enemies++ })

	script := "random"
	if !spawner.Done() {
		script = fmt.Sprintf("%d/%d", spawner.Next, len(spawner.Waves))
	}
	status := fmt.Sprintf("%s  t=%.1fs  waves %s  spawned %d  on screen %d",
		s.level.Name, spawner.Elapsed, script, spawner.Spawned, enemies)
	text.Draw(screen, status, fonts.HUD.Get(), 8, 18, cfg.White)
	text.Draw(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), fonts.HUDSmall.Get(), 8, cfg.C.Height-8, cfg.Grey)
}
