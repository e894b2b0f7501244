package ui

import "testing"

func TestGetThemeFallsBackToDefault(t *testing.T) {
	if got := GetTheme("NoSuchTheme"); got.Name != defaultThemeName {
		t.Fatalf("GetTheme fallback = %q, want %q", got.Name, defaultThemeName)
	}
	if got := GetTheme("Dracula"); got.Name != "Dracula" {
		t.Fatalf("GetTheme(Dracula) = %q", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := defaultThemeName
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != defaultThemeName {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}

	if got := NextTheme("NoSuchTheme"); got != defaultThemeName {
		t.Fatalf("NextTheme fallback = %q, want %q", got, defaultThemeName)
	}
}
