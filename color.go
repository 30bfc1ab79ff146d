// seehuhn.de/go/polyfill - a minimal polygon rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyfill

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a packed 0xRRGGBB value.  The top byte is ignored.
type Color uint32

// Colors used by the built-in scenes.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB returns the three 8-bit channels of c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements the [color.Color] interface.  Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// String returns c in the form "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See [ParseColor] for the accepted formats.
func (c *Color) UnmarshalText(text []byte) error {
	val, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = val
	return nil
}

// ParseColor parses a color given as "#RGB" or "#RRGGBB".
// The "0x" prefix is accepted in place of "#".
func ParseColor(s string) (Color, error) {
	var digits string
	switch {
	case len(s) > 1 && s[0] == '#':
		digits = s[1:]
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		digits = s[2:]
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("could not read color %q: %w", s, err)
	}

	switch len(digits) {
	case 3:
		r := val >> 8 & 0xF
		g := val >> 4 & 0xF
		b := val & 0xF
		r |= r << 4
		g |= g << 4
		b |= b << 4
		return Color(r<<16 | g<<8 | b), nil
	case 6:
		return Color(val), nil
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}
}

// ColorModel converts arbitrary colors to [Color].
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color(r>>8)<<16 | Color(g>>8)<<8 | Color(b>>8)
})
