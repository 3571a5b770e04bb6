package tui

import (
	"regexp"
	"testing"
)

func TestPaletteColorsAreValidHex(t *testing.T) {
	hexRe := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	colors := AllPaletteColors()
	if len(colors) != 26 {
		t.Fatalf("palette size = %d, want 26", len(colors))
	}
	seen := map[string]bool{}
	for _, c := range colors {
		s := string(c)
		if !hexRe.MatchString(s) {
			t.Errorf("color %q is not lowercase 6-digit hex", s)
		}
		if seen[s] {
			t.Errorf("color %q appears twice", s)
		}
		seen[s] = true
	}
}
