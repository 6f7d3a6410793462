// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/deckgen/pkg/types"
)

func TestStripInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text stays", "plain text stays"},
		{"**bold** word", "bold word"},
		{"an *italic* word", "an italic word"},
		{"run `make test`", "run make test"},
		{"see [docs](https://example.com/x)", "see docs"},
		{"**a** and *b* and `c` and [d](e)", "a and b and c and d"},
		{"", ""},
		{"unclosed **bold", "unclosed bold"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripInline(tt.in), "input %q", tt.in)
	}
}

func TestStripInline_IdentityOnPlainText(t *testing.T) {
	for _, s := range []string{
		"Hello world",
		"Revenue grew 40% year over year.",
		"  indented, with punctuation: yes!",
		"unicode ✅ ⏳ — ok",
	} {
		assert.Equal(t, s, StripInline(s))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want types.BodyLine
	}{
		{"- Item", types.BodyLine{Raw: "- Item", Text: "Item", Level: 0, Kind: types.LineBullet}},
		{"* Item", types.BodyLine{Raw: "* Item", Text: "Item", Level: 0, Kind: types.LineBullet}},
		{"  - Item", types.BodyLine{Raw: "  - Item", Text: "Item", Level: 1, Kind: types.LineBullet}},
		{"  * Item", types.BodyLine{Raw: "  * Item", Text: "Item", Level: 1, Kind: types.LineBullet}},
		{"\t- Item", types.BodyLine{Raw: "\t- Item", Text: "Item", Level: 1, Kind: types.LineBullet}},
		{"Plain text", types.BodyLine{Raw: "Plain text", Text: "Plain text", Level: 0, Kind: types.LinePlain}},
		{"  indented plain", types.BodyLine{Raw: "  indented plain", Text: "indented plain", Level: 0, Kind: types.LinePlain}},
		{"⏳ pending", types.BodyLine{Raw: "⏳ pending", Text: "⏳ pending", Level: 0, Kind: types.LineBullet}},
		{"* *emphasis* item", types.BodyLine{Raw: "* *emphasis* item", Text: "emphasis item", Level: 0, Kind: types.LineBullet}},
		{"- **Bold** lead", types.BodyLine{Raw: "- **Bold** lead", Text: "Bold lead", Level: 0, Kind: types.LineBullet}},
		{"-no space", types.BodyLine{Raw: "-no space", Text: "-no space", Level: 0, Kind: types.LinePlain}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.raw), "raw %q", tt.raw)
	}
}
