// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// bulletMarkers are removed from the displayed text.
var bulletMarkers = []string{"- ", "* "}

// glyphBullets mark a top-level bullet and stay in the displayed text.
var glyphBullets = []string{"✅", "⏳"}

// Classify decides the bullet level of a raw body line and returns its
// display text. Markers are detected on the raw line before inline markup
// is stripped, so a leading "* " is never mistaken for italics.
func Classify(raw string) types.BodyLine {
	line := types.BodyLine{Raw: raw, Kind: types.LinePlain}

	if rest, ok := cutMarker(raw); ok {
		line.Kind = types.LineBullet
		line.Text = clean(rest)
		return line
	}
	if HasGlyph(raw) {
		line.Kind = types.LineBullet
		line.Text = clean(raw)
		return line
	}

	indented := strings.TrimLeft(raw, " \t")
	if indented != raw {
		if rest, ok := cutMarker(indented); ok {
			line.Kind = types.LineBullet
			line.Level = 1
			line.Text = clean(rest)
			return line
		}
	}

	line.Text = clean(raw)
	return line
}

// HasGlyph reports whether raw starts with a checkbox-style bullet glyph.
func HasGlyph(raw string) bool {
	for _, g := range glyphBullets {
		if strings.HasPrefix(raw, g) {
			return true
		}
	}
	return false
}

func cutMarker(s string) (string, bool) {
	for _, m := range bulletMarkers {
		if rest, ok := strings.CutPrefix(s, m); ok {
			return rest, true
		}
	}
	return s, false
}

func clean(s string) string {
	return strings.TrimSpace(StripInline(s))
}
