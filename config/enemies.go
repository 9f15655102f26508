package config

import (
	"fmt"
	"strings"
)

// EnemyType identifies one of the enemy archetypes the spawner can build.
type EnemyType int

const (
	EnemySmall EnemyType = iota
	EnemyShooter
	EnemyStone
	EnemyBig
	EnemyPursuer
	EnemyStaticShooter
)

// EnemyTypes lists every archetype in declaration order.
var EnemyTypes = []EnemyType{
	EnemySmall,
	EnemyShooter,
	EnemyStone,
	EnemyBig,
	EnemyPursuer,
	EnemyStaticShooter,
}

var enemyTypeNames = map[EnemyType]string{
	EnemySmall:         "small",
	EnemyShooter:       "shooter",
	EnemyStone:         "stone",
	EnemyBig:           "big",
	EnemyPursuer:       "pursuer",
	EnemyStaticShooter: "static_shooter",
}

func (t EnemyType) String() string {
	if name, ok := enemyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EnemyType(%d)", int(t))
}

// ParseEnemyType maps a level/config name like "static_shooter" to its type.
func ParseEnemyType(name string) (EnemyType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for t, n := range enemyTypeNames {
		if n == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy type %q", name)
}

// UnmarshalText lets enemy types be used as YAML keys and CSV fields.
func (t *EnemyType) UnmarshalText(text []byte) error {
	parsed, err := ParseEnemyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t EnemyType) MarshalText() ([]byte, error) {
	if _, ok := enemyTypeNames[t]; !ok {
		return nil, fmt.Errorf("unknown enemy type %d", int(t))
	}
	return []byte(t.String()), nil
}

// BulletDirection is the direction a shooter fires in.
type BulletDirection int

const (
	BulletLeft BulletDirection = iota
	BulletUp
	BulletDown
)

// Vector returns the unit vector for the direction in screen space (y down).
func (d BulletDirection) Vector() (float64, float64) {
	switch d {
	case BulletUp:
		return 0, -1
	case BulletDown:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d BulletDirection) String() string {
	switch d {
	case BulletUp:
		return "up"
	case BulletDown:
		return "down"
	default:
		return "left"
	}
}
