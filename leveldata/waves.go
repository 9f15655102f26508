package leveldata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/jfighter/config"
	"github.com/gocarina/gocsv"
)

// waveRow is one CSV line of a wave script: at,type,x,y. Empty x or y
// columns leave the coordinate unset.
type waveRow struct {
	At   float64 `csv:"at"`
	Type string  `csv:"type"`
	X    string  `csv:"x"`
	Y    string  `csv:"y"`
}

// LoadWaves parses a CSV wave script and returns the waves ordered by time.
func LoadWaves(r io.Reader) ([]Wave, error) {
	var rows []*waveRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse wave script: %w", err)
	}

	waves := make([]Wave, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1
		enemyType, err := config.ParseEnemyType(row.Type)
		if err != nil {
			return nil, fmt.Errorf("wave script line %d: %w", line, err)
		}
		if err := checkTime(row.At); err != nil {
			return nil, fmt.Errorf("wave script line %d: %w", line, err)
		}
		x, err := optionalFloat(row.X)
		if err != nil {
			return nil, fmt.Errorf("wave script line %d: x: %w", line, err)
		}
		y, err := optionalFloat(row.Y)
		if err != nil {
			return nil, fmt.Errorf("wave script line %d: y: %w", line, err)
		}
		if x != nil && y == nil {
			return nil, fmt.Errorf("wave script line %d: x set without y", line)
		}
		waves = append(waves, Wave{At: row.At, Type: enemyType, X: x, Y: y})
	}

	SortWaves(waves)
	return waves, nil
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if err := checkCoord(v); err != nil {
		return nil, err
	}
	return &v, nil
}
