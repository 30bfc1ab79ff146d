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
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkFillO benchmarks FillPolygon drawing an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			buf := mustBuffer(b, size, size)
			r := NewRasteriser()

			center := float64(size) / 2
			outer := circle(center, center, float64(size)*0.45, 64, false)
			inner := circle(center, center, float64(size)*0.30, 64, true)

			// The two rings are joined by a bridge, which is traversed
			// twice and so does not change the even-odd interior.
			ring := make([]image.Point, 0, len(outer)+len(inner)+2)
			ring = append(ring, outer...)
			ring = append(ring, outer[0])
			ring = append(ring, inner...)
			ring = append(ring, inner[0])

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.FillPolygon(buf, ring, White)
			}
		})
	}
}

// BenchmarkOutlineO benchmarks DrawOutline on the rings of an "O" shape.
func BenchmarkOutlineO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			buf := mustBuffer(b, size, size)

			center := float64(size) / 2
			outer := circle(center, center, float64(size)*0.45, 64, false)
			inner := circle(center, center, float64(size)*0.30, 64, true)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				DrawOutline(buf, outer, White)
				DrawOutline(buf, inner, White)
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape,
// with anti-aliasing.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			outer := circle(center, center, float64(size)*0.45, 64, false)
			inner := circle(center, center, float64(size)*0.30, 64, true)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addRingToVector(r, outer)
				addRingToVector(r, inner)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// circle returns n points on a circle, in pixel coordinates.
func circle(cx, cy, radius float64, n int, clockwise bool) []image.Point {
	dir := 1.0
	if clockwise {
		dir = -1
	}
	res := make([]image.Point, n)
	for i := range n {
		phi := dir * 2 * math.Pi * float64(i) / float64(n)
		res[i] = image.Point{
			X: int(cx + radius*math.Cos(phi)),
			Y: int(cy + radius*math.Sin(phi)),
		}
	}
	return res
}

// addRingToVector adds a closed polygon to a vector.Rasterizer.
func addRingToVector(r *vector.Rasterizer, ring []image.Point) {
	r.MoveTo(float32(ring[0].X), float32(ring[0].Y))
	for _, p := range ring[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}
