package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// fileConfig mirrors the YAML layout. Enemy types are kept as raw nodes so
// that a file can override a single field of a type without zeroing the rest.
type fileConfig struct {
	Screen  *Config                 `yaml:"screen"`
	Enemy   *EnemyConfig            `yaml:"enemy"`
	Types   map[EnemyType]yaml.Node `yaml:"enemy_types"`
	Physics *PhysicsConfig          `yaml:"physics"`
	Spawner *SpawnerConfig          `yaml:"spawner"`
	Ship    *ShipConfig             `yaml:"ship"`
}

// Load reads a YAML file and overlays it on the current configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := LoadBytes(data); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// LoadBytes overlays YAML data on the current configuration. Keys missing
// from the document keep their current values. Nothing is applied if the
// document is malformed or the result fails validation.
func LoadBytes(data []byte) error {
	screen := *C
	enemy := Enemy
	enemy.Types = make(map[EnemyType]EnemyTypeConfig, len(Enemy.Types))
	for t, tc := range Enemy.Types {
		enemy.Types[t] = tc
	}
	physics := Physics
	spawner := Spawner
	ship := Ship

	fc := fileConfig{
		Screen:  &screen,
		Enemy:   &enemy,
		Physics: &physics,
		Spawner: &spawner,
		Ship:    &ship,
	}
	if err := decodeStrict(data, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	for t, node := range fc.Types {
		tc, ok := enemy.Types[t]
		if !ok {
			return fmt.Errorf("%w: no defaults for enemy type %s", ErrInvalid, t)
		}
		raw, err := yaml.Marshal(&node)
		if err != nil {
			return fmt.Errorf("enemy type %s: %w", t, err)
		}
		if err := decodeStrict(raw, &tc); err != nil {
			return fmt.Errorf("enemy type %s: %w", t, err)
		}
		enemy.Types[t] = tc
	}

	if err := validate(&screen, &enemy, &physics, &spawner); err != nil {
		return err
	}

	C = &screen
	Enemy = enemy
	Physics = physics
	Spawner = spawner
	Ship = ship
	return nil
}

// decodeStrict decodes a YAML document, rejecting keys that match no field.
// An empty document leaves out untouched.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func validate(c *Config, e *EnemyConfig, p *PhysicsConfig, s *SpawnerConfig) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	if e.Height <= 0 || e.Height+2*e.EdgeMargin >= c.Height {
		return fmt.Errorf("%w: enemy height %d does not fit screen height %d", ErrInvalid, e.Height, c.Height)
	}
	for _, t := range EnemyTypes {
		tc, ok := e.Types[t]
		if !ok {
			return fmt.Errorf("%w: missing enemy type %s", ErrInvalid, t)
		}
		if tc.Width <= 0 || tc.Height <= 0 {
			return fmt.Errorf("%w: enemy type %s has size %dx%d", ErrInvalid, t, tc.Width, tc.Height)
		}
		if tc.Height >= c.Height {
			return fmt.Errorf("%w: enemy type %s taller than the screen", ErrInvalid, t)
		}
		if tc.FireCooldown < 0 {
			return fmt.Errorf("%w: enemy type %s fire cooldown %v", ErrInvalid, t, tc.FireCooldown)
		}
	}
	if shooter := e.Types[EnemyShooter]; shooter.Height+2*e.EdgeMargin >= c.Height {
		return fmt.Errorf("%w: shooter lanes do not fit screen height %d", ErrInvalid, c.Height)
	}
	if p.Gravity < 0 || p.Density < 0 || p.Friction < 0 || p.Restitution < 0 ||
		p.BoxDensity < 0 || p.BoxFriction < 0 || p.BoxRestitution < 0 {
		return fmt.Errorf("%w: negative physics constant", ErrInvalid)
	}
	if p.BodyMass <= 0 || p.CircleRadius <= 0 || p.BoxHalfWidth <= 0 || p.BoxHalfHeight <= 0 {
		return fmt.Errorf("%w: body mass and dimensions must be positive", ErrInvalid)
	}
	if p.TimeStep <= 0 || p.PixelsPerMeter <= 0 {
		return fmt.Errorf("%w: time step and pixel scale must be positive", ErrInvalid)
	}
	if s.RandomInterval < 0 {
		return fmt.Errorf("%w: spawner interval %v", ErrInvalid, s.RandomInterval)
	}
	return nil
}
