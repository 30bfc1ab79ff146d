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
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// PixelOf converts a vertex to pixel coordinates by truncating both
// coordinates toward zero.
func PixelOf(v vec.Vec2) image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// PixelsOf converts a vertex ring to pixel coordinates, see [PixelOf].
// The same integer ring should be used for filling and for outlining a
// polygon, so that the outline covers the boundary of the filled area.
func PixelsOf(vv []vec.Vec2) []image.Point {
	res := make([]image.Point, len(vv))
	for i, v := range vv {
		res[i] = PixelOf(v)
	}
	return res
}

// edge is a non-horizontal polygon edge, oriented so that y0 < y1.
type edge struct {
	x0, y0 int // lower end point
	x1, y1 int // upper end point
}

// intercept returns the x-coordinate where e crosses scanline y.
// The quotient is rounded once, so integer intercepts are exact.
func (e *edge) intercept(y int) float64 {
	return float64(e.x0) + float64((y-e.y0)*(e.x1-e.x0))/float64(e.y1-e.y0)
}

// Rasteriser fills polygons using the even-odd scanline rule.
// Internal buffers grow as needed but never shrink, so a Rasteriser
// which is reused for many polygons does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	edges     []edge    // non-horizontal edges of the current polygon
	crossings []float64 // x-intercepts for the current scanline
}

// NewRasteriser returns a Rasteriser with empty buffers.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{}
}

// FillPolygon fills the interior of the closed polygon with vertices pts,
// using a fresh [Rasteriser].  See [Rasteriser.FillPolygon].
func FillPolygon(b *Buffer, pts []image.Point, c Color) {
	var r Rasteriser
	r.FillPolygon(b, pts, c)
}

// FillPolygon fills the interior of the closed polygon with vertices pts.
// The last vertex is implicitly connected to the first one.  Polygons with
// fewer than three vertices are ignored.
//
// For every scanline y between the lowest and highest vertex, the
// x-intercepts of all edges crossing the scanline are sorted, and the
// pixels between consecutive pairs of intercepts are set to c (even-odd
// rule).  A pixel is set if its integer coordinates lie in such an
// interval, end points included.  An unmatched last intercept is ignored.
//
// An edge from y0 to y1 > y0 takes part in scanline y if y0 <= y < y1.
// Horizontal edges never take part.  Shared vertices are thus counted
// exactly once.  On the top scanline of the polygon, edges ending there
// take part as well, so that the polygon's highest row is filled.
func (r *Rasteriser) FillPolygon(b *Buffer, pts []image.Point, c Color) {
	if len(pts) < 3 {
		return
	}

	yMin, yMax, ok := r.collectEdges(pts)
	if !ok {
		return
	}

	// Rows outside the buffer cannot receive pixels.
	yFirst := max(yMin, 0)
	yLast := min(yMax, b.height-1)

	for y := yFirst; y <= yLast; y++ {
		r.crossings = r.crossings[:0]
		for i := range r.edges {
			e := &r.edges[i]
			if y < e.y0 || y > e.y1 || y == e.y1 && y != yMax {
				continue
			}
			r.crossings = append(r.crossings, e.intercept(y))
		}
		slices.Sort(r.crossings)

		for k := 0; k+1 < len(r.crossings); k += 2 {
			xLeft := int(math.Ceil(r.crossings[k]))
			xRight := int(math.Floor(r.crossings[k+1]))
			b.hline(y, xLeft, xRight, c)
		}
	}
}

// collectEdges fills r.edges with the non-horizontal edges of the polygon
// and returns the vertical extent of the polygon.  The result ok is false
// if the polygon has no non-horizontal edges.
func (r *Rasteriser) collectEdges(pts []image.Point) (yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]

	yMin, yMax = pts[0].Y, pts[0].Y
	n := len(pts)
	for i, p := range pts {
		q := pts[(i+1)%n]
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)

		if p.Y == q.Y {
			continue
		}
		if p.Y > q.Y {
			p, q = q, p
		}
		r.edges = append(r.edges, edge{
			x0: p.X, y0: p.Y,
			x1: q.X, y1: q.Y,
		})
	}

	return yMin, yMax, len(r.edges) > 0
}

// DrawOutline draws the closed polygon with vertices pts, by joining
// consecutive vertices with [DrawLine] and closing the ring from the
// last vertex back to the first.  Polygons with fewer than two vertices
// are ignored.
func DrawOutline(b *Buffer, pts []image.Point, c Color) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := range n - 1 {
		DrawLine(b, pts[i], pts[i+1], c)
	}
	DrawLine(b, pts[n-1], pts[0], c)
}
