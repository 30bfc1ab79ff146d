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

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#000000", 0x000000},
		{"#FFC857", 0xFFC857},
		{"#ffc857", 0xFFC857},
		{"#fff", 0xFFFFFF},
		{"#1a3", 0x11AA33},
		{"0x3A86FF", 0x3A86FF},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "FFFFFF", "#FFFF", "#GGGGGG", "#1234567", "#-12345"} {
		if c, err := ParseColor(in); err == nil {
			t.Errorf("%q: expected error, got %s", in, c)
		}
	}
}

func TestColorText(t *testing.T) {
	for _, c := range []Color{Black, White, 0x0A0B0C, 0xFFC857} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Color
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != c {
			t.Errorf("%s: got %s after round trip through %q", c, back, text)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0xFF8001).RGBA()
	if r != 0xFFFF || g != 0x8080 || b != 0x0101 || a != 0xFFFF {
		t.Errorf("unexpected RGBA values %04x %04x %04x %04x", r, g, b, a)
	}
}
