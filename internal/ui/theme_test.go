package ui

import "testing"

func TestGetTheme_UnknownNameFallsBack(t *testing.T) {
	got := GetTheme("NoSuchTheme")
	if got.Name != themes[0].Name {
		t.Fatalf("GetTheme = %q, want default %q", got.Name, themes[0].Name)
	}
}

func TestGetTheme_CaseInsensitive(t *testing.T) {
	got := GetTheme("slate")
	if got.Name != "Slate" {
		t.Fatalf("GetTheme = %q, want Slate", got.Name)
	}
}

func TestNextTheme_CyclesThroughAll(t *testing.T) {
	name := themes[0].Name
	seen := map[string]bool{}
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themes[0].Name {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
}
