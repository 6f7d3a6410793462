// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

// Geometry is in EMU (English Metric Units).
const (
	emuPerInch = 914400

	slideWidth  = 10 * emuPerInch
	slideHeight = 15 * emuPerInch / 2
)

type box struct {
	x, y, cx, cy int
}

var (
	titleBox = box{x: emuPerInch / 2, y: emuPerInch * 3 / 10, cx: 9 * emuPerInch, cy: emuPerInch * 6 / 5}
	bodyBox  = box{x: emuPerInch / 2, y: emuPerInch * 8 / 5, cx: 9 * emuPerInch, cy: emuPerInch * 11 / 2}
)

// Palette colours as RRGGBB.
const (
	colorPrimary   = "0284C7"
	colorDarkBlue  = "0369A1"
	colorAccent    = "10B981"
	colorOrange    = "FB923C"
	colorDarkGray  = "1F2937"
	colorText      = "374151"
	colorLightGray = "9CA3AF"
	colorCode      = "586E75"
	colorWhite     = "FFFFFF"
	colorBgLight   = "F8FAFC"
)

// Role names a kind of text on a slide.
type Role int

const (
	RoleTitle Role = iota
	RoleBody
	RoleCode
)

// TextStyle is the run formatting for a Role. Size is in hundredths of a point.
type TextStyle struct {
	Size  int
	Bold  bool
	Color string
	Font  string
}

// StyleFor returns the fixed text style for role.
func StyleFor(role Role) TextStyle {
	switch role {
	case RoleTitle:
		return TextStyle{Size: 4000, Bold: true, Color: colorPrimary}
	case RoleCode:
		return TextStyle{Size: 1200, Color: colorCode, Font: "Courier New"}
	default:
		return TextStyle{Size: 1600, Color: colorText}
	}
}

// bulletIndent holds marL and indent (EMU) and the bullet glyph per level.
var bulletIndent = [2]struct {
	marL, indent int
	char         string
}{
	{marL: 342900, indent: -342900, char: "•"},
	{marL: 742950, indent: -285750, char: "–"},
}
