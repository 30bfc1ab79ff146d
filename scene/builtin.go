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

package scene

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyfill"
)

// All contains the built-in scenes, indexed by name.
var All = map[string]Scene{
	"star":      starScene,
	"square":    squareScene,
	"triangle":  triangleScene,
	"pentagram": pentagramScene,
	"overlap":   overlapScene,
}

// Names returns the names of the built-in scenes in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Builtin returns a copy of the built-in scene with the given name.
func Builtin(name string) (Scene, bool) {
	sc, ok := All[name]
	if !ok {
		return Scene{}, false
	}
	return sc.Clone(), true
}

// starScene is a ten-vertex star, filled in yellow with a white outline.
var starScene = Scene{
	Name:       "star",
	Width:      800,
	Height:     600,
	Background: polyfill.Black,
	Shapes: []Shape{
		{
			Name: "star",
			Vertices: []vec.Vec2{
				pt(165, 380), pt(185, 360), pt(180, 330), pt(207, 345),
				pt(233, 330), pt(230, 360), pt(250, 380), pt(220, 385),
				pt(205, 410), pt(193, 383),
			},
			Fill:    ref(0xFFC857),
			Outline: ref(polyfill.White),
		},
	},
}

// squareScene fills the whole canvas.
var squareScene = Scene{
	Name:       "square",
	Width:      12,
	Height:     12,
	Background: polyfill.Black,
	Shapes: []Shape{
		{
			Name:     "square",
			Vertices: rectangle(0, 0, 11, 11),
			Fill:     ref(polyfill.White),
		},
	},
}

// triangleScene is a right-angled triangle in the lower left corner.
var triangleScene = Scene{
	Name:       "triangle",
	Width:      8,
	Height:     8,
	Background: polyfill.Black,
	Shapes: []Shape{
		{
			Name:     "triangle",
			Vertices: []vec.Vec2{pt(0, 0), pt(4, 0), pt(0, 4)},
			Fill:     ref(polyfill.White),
		},
	},
}

// pentagramScene is self-intersecting; the even-odd rule leaves the
// central pentagon unfilled.
var pentagramScene = Scene{
	Name:       "pentagram",
	Width:      64,
	Height:     64,
	Background: polyfill.Black,
	Shapes: []Shape{
		{
			Name:     "pentagram",
			Vertices: fivePointStar(32, 32, 25),
			Fill:     ref(0x3A86FF),
			Outline:  ref(polyfill.White),
		},
	},
}

// overlapScene draws overlapping shapes, partly off the canvas, to show
// the drawing order and clipping.
var overlapScene = Scene{
	Name:       "overlap",
	Width:      200,
	Height:     100,
	Background: 0x202020,
	Shapes: []Shape{
		{
			Name:     "back",
			Vertices: rectangle(-20, -20, 120, 70),
			Fill:     ref(0xE63946),
			Outline:  ref(polyfill.White),
		},
		{
			Name:     "front",
			Vertices: []vec.Vec2{pt(60, 10), pt(230, 50), pt(90, 120)},
			Fill:     ref(0x2A9D8F),
			Outline:  ref(polyfill.White),
		},
		{
			Name:     "frame",
			Vertices: rectangle(5, 5, 194, 94),
			Outline:  ref(0xF4A261),
		},
	},
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ref returns a pointer to a copy of c.
func ref(c polyfill.Color) *polyfill.Color {
	return &c
}

// rectangle returns the corners of an axis-parallel rectangle.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// fivePointStar returns the vertices of a five-pointed star, visiting
// every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	order := []int{0, 2, 4, 1, 3}
	res := make([]vec.Vec2, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}
