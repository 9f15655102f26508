package assets

import (
	"testing"

	"github.com/automoto/jfighter/config"
)

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(levels))
	}
	if levels[0].Name != "level1" || levels[1].Name != "level2" {
		t.Errorf("level names = %q, %q", levels[0].Name, levels[1].Name)
	}

	// 4 placed in the map plus 8 from the wave script.
	level := levels[0]
	if len(level.Waves) != 12 {
		t.Fatalf("level1 has %d waves, want 12", len(level.Waves))
	}
	for i := 1; i < len(level.Waves); i++ {
		if level.Waves[i].At < level.Waves[i-1].At {
			t.Fatalf("waves out of order at %d", i)
		}
	}
	if first := level.Waves[0]; first.Type != config.EnemySmall || first.At != 0.5 {
		t.Errorf("first wave = %v at %v", first.Type, first.At)
	}
	if last := level.Waves[len(level.Waves)-1]; last.Type != config.EnemyBig || last.X != nil {
		t.Errorf("last wave = %+v, want random-height big enemy", last)
	}
}
