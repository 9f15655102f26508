package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/jfighter/config"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="50" height="15" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Enemies">
  <object id="1" x="900" y="64" width="32" height="32">
   <properties>
    <property name="enemyType" value="pursuer"/>
    <property name="at" type="float" value="4"/>
   </properties>
  </object>
  <object id="2" x="850" y="200" width="32" height="32">
   <properties>
    <property name="enemyType" value="static_shooter"/>
    <property name="at" type="float" value="1.5"/>
   </properties>
  </object>
  <object id="3" type="big" x="820" y="300" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="Decoration">
  <object id="5" x="10" y="10" width="8" height="8"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level1.tmx": {Data: []byte(testTMX)},
	}

	level, err := LoadTMX(fsys, "levels/level1.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}

	if level.Name != "level1" {
		t.Errorf("name = %q, want level1", level.Name)
	}
	if level.Width != 800 || level.Height != 240 {
		t.Errorf("size = %dx%d, want 800x240", level.Width, level.Height)
	}
	if len(level.Waves) != 3 {
		t.Fatalf("got %d waves, want 3", len(level.Waves))
	}

	want := []struct {
		at   float64
		typ  config.EnemyType
		x, y float64
	}{
		{0, config.EnemyBig, 820, 300},
		{1.5, config.EnemyStaticShooter, 850, 200},
		{4, config.EnemyPursuer, 900, 64},
	}
	for i, w := range want {
		got := level.Waves[i]
		if got.At != w.at || got.Type != w.typ {
			t.Errorf("wave %d = %v@%v, want %v@%v", i, got.Type, got.At, w.typ, w.at)
		}
		if got.X == nil || got.Y == nil || *got.X != w.x || *got.Y != w.y {
			t.Errorf("wave %d position = %v,%v, want %v,%v", i, got.X, got.Y, w.x, w.y)
		}
	}
}

func TestLoadTMXUnknownType(t *testing.T) {
	bad := strings.Replace(testTMX, `value="pursuer"`, `value="dragon"`, 1)
	fsys := fstest.MapFS{"level.tmx": {Data: []byte(bad)}}

	if _, err := LoadTMX(fsys, "level.tmx"); err == nil {
		t.Fatal("unknown enemy type accepted")
	}
}

func TestLoadTMXRejectsBadTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"NaN", "NaN"},
		{"infinite", "Inf"},
		{"negative", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := strings.Replace(testTMX, `name="at" type="float" value="4"`, `name="at" type="float" value="`+tt.value+`"`, 1)
			fsys := fstest.MapFS{"level.tmx": {Data: []byte(bad)}}

			if _, err := LoadTMX(fsys, "level.tmx"); err == nil {
				t.Fatalf("spawn time %s accepted", tt.value)
			}
		})
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":   {Data: []byte(testTMX)},
		"levels/a.tmx":   {Data: []byte(testTMX)},
		"levels/a.waves": {Data: []byte("at,type,x,y\n")},
	}

	levels, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "a" || levels[1].Name != "b" {
		t.Errorf("levels not sorted by name: %v", levels)
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("empty directory accepted")
	}
}

func TestLoadWaves(t *testing.T) {
	script := `at,type,x,y
3,shooter,,
0.5,small,,120
3,stone,,
1,big,700,40
`
	waves, err := LoadWaves(strings.NewReader(script))
	if err != nil {
		t.Fatalf("LoadWaves: %v", err)
	}
	if len(waves) != 4 {
		t.Fatalf("got %d waves, want 4", len(waves))
	}

	wantTypes := []config.EnemyType{config.EnemySmall, config.EnemyBig, config.EnemyShooter, config.EnemyStone}
	for i, wt := range wantTypes {
		if waves[i].Type != wt {
			t.Errorf("wave %d type = %v, want %v", i, waves[i].Type, wt)
		}
	}

	if waves[0].X != nil || waves[0].Y == nil || *waves[0].Y != 120 {
		t.Errorf("height-only wave = %+v", waves[0])
	}
	if waves[1].X == nil || *waves[1].X != 700 || *waves[1].Y != 40 {
		t.Errorf("positioned wave = %+v", waves[1])
	}
	if waves[2].X != nil || waves[2].Y != nil {
		t.Errorf("edge wave has coordinates: %+v", waves[2])
	}
}

func TestLoadWavesErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown type", "at,type,x,y\n1,ufo,,\n"},
		{"negative time", "at,type,x,y\n-1,small,,\n"},
		{"bad coordinate", "at,type,x,y\n1,small,,abc\n"},
		{"x without y", "at,type,x,y\n1,small,10,\n"},
		{"bad time", "at,type,x,y\nsoon,small,,\n"},
		{"NaN time", "at,type,x,y\n3,small,,\nNaN,big,,\n1,stone,,\n"},
		{"infinite time", "at,type,x,y\nInf,shooter,,\n"},
		{"negative infinite time", "at,type,x,y\n-Inf,shooter,,\n"},
		{"NaN coordinate", "at,type,x,y\n1,small,,NaN\n"},
		{"infinite coordinate", "at,type,x,y\n1,small,+Inf,40\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadWaves(strings.NewReader(tt.script)); err == nil {
				t.Fatalf("script accepted:\n%s", tt.script)
			}
		})
	}
}
