package ui

import "testing"

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames = %v, want 3 themes", names)
	}
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestGetTheme_KnownAndFallback(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing) = %q, want Nightfox", got)
	}
}

func TestThemeNames_ReturnsCopy(t *testing.T) {
	names := ThemeNames()
	names[0] = "mutated"
	if ThemeNames()[0] == "mutated" {
		t.Fatalf("ThemeNames exposes internal slice")
	}
}

func TestLevelStyle_UnknownFallsBack(t *testing.T) {
	s := GetTheme("Kanagawa").Styles()
	if got := s.LevelStyle("???").Render("x"); got == "" {
		t.Fatalf("LevelStyle fallback rendered empty")
	}
}
