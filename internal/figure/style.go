package figure

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// StrokeWidths is the palette offered by the UI. The model accepts any
// positive width.
var StrokeWidths = []int{1, 2, 4, 6, 8, 10}

// Style bundles the paint attributes of a figure. It is a value type:
// edits replace the whole style rather than poking at shared fields.
type Style struct {
	Outline     color.NRGBA
	Fill        color.NRGBA
	Filled      bool
	StrokeWidth int
}

// DefaultStyle returns the style new documents start with: black
// outline, white fill, outline only, width 2.
func DefaultStyle() Style {
	return Style{
		Outline:     color.NRGBA{A: 255},
		Fill:        color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Filled:      false,
		StrokeWidth: 2,
	}
}

// HexColor formats c as a lowercase "#rrggbb" string. Alpha is not
// persisted; figures are always fully opaque.
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses a "#rrggbb" string. Uppercase digits are
// accepted on read; the writer always emits lowercase.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrParse, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrParse, s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// NRGBAOf converts any color.Color to the opaque NRGBA the style
// stores, dropping alpha.
func NRGBAOf(c color.Color) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}
