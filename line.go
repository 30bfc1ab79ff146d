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

import "image"

// DrawLine draws the segment from p0 to p1, both endpoints included, using
// Bresenham's algorithm.  Pixels outside the buffer are skipped.
//
// The pixel set does not depend on the direction of the segment: the
// endpoints are put into a canonical order before stepping, so that
// DrawLine(b, p, q, c) and DrawLine(b, q, p, c) set the same pixels.
func DrawLine(b *Buffer, p0, p1 image.Point, c Color) {
	if p1.X < p0.X || p1.X == p0.X && p1.Y < p0.Y {
		p0, p1 = p1, p0
	}

	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx := 1
	if p0.X >= p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y >= p1.Y {
		sy = -1
	}

	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		b.Set(x, y, c)
		if x == p1.X && y == p1.Y {
			break
		}

		// both steps may be taken in the same iteration
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
