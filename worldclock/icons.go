package worldclock

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const iconGlobe = "🌐"

// cityIcons maps normalized display names to their row icons.
var cityIcons = map[string]string{
	"new york":    "🗽",
	"london":      "💂",
	"tokyo":       "🗼",
	"sydney":      "🦘",
	"dubai":       "🐪",
	"los angeles": "🎬",
	"local time":  "🏠",
}

// iconFor looks up a row icon by display name. Unrecognized names get the
// globe. Lookup tolerates case, stray punctuation and small edits so a
// renamed entry keeps its icon instead of silently dropping to the default.
func iconFor(name string) string {
	key := normalizeCity(name)
	if key == "" {
		return iconGlobe
	}
	if icon, ok := cityIcons[key]; ok {
		return icon
	}

	best := iconGlobe
	bestScore := 1.0
	for city, icon := range cityIcons {
		dist := levenshtein.ComputeDistance(key, city)
		maxlen := float64(len(city))
		if len(key) > len(city) {
			maxlen = float64(len(key))
		}
		if score := float64(dist) / maxlen; score < bestScore {
			bestScore, best = score, icon
		}
	}
	if bestScore < 0.4 {
		return best
	}
	return iconGlobe
}

// normalizeCity lowercases and strips everything but letters and single
// inner spaces.
func normalizeCity(name string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
