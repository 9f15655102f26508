package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/jfighter/config"
	"github.com/lafriks/go-tiled"
)

// EnemyGroup is the object group holding enemy placements.
const EnemyGroup = "Enemies"

// LoadTMX parses a Tiled map. Every object in the Enemies group becomes a
// wave at the object position; its "enemyType" property selects the type and
// its "at" property the spawn time. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != EnemyGroup {
			continue
		}
		for _, o := range og.Objects {
			name := o.Properties.GetString("enemyType")
			if name == "" {
				name = o.Class
			}
			if name == "" {
				name = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			enemyType, err := config.ParseEnemyType(name)
			if err != nil {
				return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
			}
			at := o.Properties.GetFloat("at")
			if err := checkTime(at); err != nil {
				return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
			}
			if err := checkCoord(o.X); err != nil {
				return nil, fmt.Errorf("%s: object %d: x: %w", tmxPath, o.ID, err)
			}
			if err := checkCoord(o.Y); err != nil {
				return nil, fmt.Errorf("%s: object %d: y: %w", tmxPath, o.ID, err)
			}
			level.Waves = append(level.Waves, Wave{
				At:   at,
				Type: enemyType,
				X:    Float(o.X),
				Y:    Float(o.Y),
			})
		}
	}

	SortWaves(level.Waves)
	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir and returns them
// sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
