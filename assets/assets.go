package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/jfighter/leveldata"
)

var (
	//go:embed all:levels all:waves
	assetFS embed.FS
)

// FS exposes the embedded level and wave files.
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level. A level's wave script, if present
// as waves/<name>.csv, is merged into its spawn list.
func LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAllLevels(assetFS, "levels")
	if err != nil {
		return nil, err
	}

	for _, level := range levels {
		f, err := assetFS.Open(path.Join("waves", level.Name+".csv"))
		if err != nil {
			continue
		}
		waves, err := leveldata.LoadWaves(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
		level.Waves = append(level.Waves, waves...)
		leveldata.SortWaves(level.Waves)
	}
	return levels, nil
}

// MustLoadLevels is LoadLevels for startup code.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
