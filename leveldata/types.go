// Package leveldata parses level layouts and wave scripts into spawn lists.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"fmt"
	"math"
	"sort"

	"github.com/automoto/jfighter/config"
)

// Wave is one scripted enemy spawn. X and Y are optional: with neither set
// the enemy enters at a random height on the right edge, with only Y set it
// enters at the default spawn column, and with both set it appears exactly
// there.
type Wave struct {
	At   float64          // seconds after level start
	Type config.EnemyType
	X, Y *float64
}

// Level holds the spawn script for a level.
type Level struct {
	Name   string
	Width  int
	Height int
	Waves  []Wave
}

// SortWaves orders waves by time, keeping file order for equal times.
func SortWaves(waves []Wave) {
	sort.SliceStable(waves, func(i, j int) bool {
		return waves[i].At < waves[j].At
	})
}

// checkTime rejects spawn times that cannot be ordered or reached.
func checkTime(at float64) error {
	if math.IsNaN(at) || math.IsInf(at, 0) {
		return fmt.Errorf("time %v is not finite", at)
	}
	if at < 0 {
		return fmt.Errorf("negative time %v", at)
	}
	return nil
}

func checkCoord(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("coordinate %v is not finite", v)
	}
	return nil
}

// Float returns a pointer to v, for building Waves by hand.
func Float(v float64) *float64 {
	return &v
}
