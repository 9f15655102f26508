package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, HUDSmall} {
		if !Loaded(name) {
			t.Errorf("%s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}

	big := HUD.Get().Metrics().Height
	small := HUDSmall.Get().Metrics().Height
	if big <= small {
		t.Errorf("HUD height %v not larger than HUDSmall %v", big, small)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("garbage font data accepted")
	}
	if Loaded("broken") {
		t.Error("broken font registered")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on a missing font did not panic")
		}
	}()
	FontName("missing").Get()
}
