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

// Package polyfill draws polygons into a pixel buffer and writes the
// result as a 24-bit bitmap file.
//
// Vertices are given in pixel coordinates.  There is no anti-aliasing:
// a pixel is either set or left alone.  A typical render clears a
// [Buffer], fills each polygon with [FillPolygon], draws its boundary with
// [DrawOutline], flips the buffer with [Buffer.FlipVertical] and finally
// writes it with [WriteFile].
package polyfill
