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

// Package scene describes what to draw: a canvas and an ordered list of
// polygons with their fill and outline colors.
package scene

import (
	"fmt"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyfill"
)

// Scene is a canvas together with the shapes drawn on it.
type Scene struct {
	Name       string         // lowercase a-z, 0-9 and _ only
	Width      int            // canvas width in pixels
	Height     int            // canvas height in pixels
	Background polyfill.Color // initial color of all pixels
	Shapes     []Shape        // drawn in order, later shapes on top
}

// Shape is a closed polygon.  The last vertex is connected to the first.
//
// Vertices are in pixel coordinates with y pointing up in the final
// image, and are truncated toward zero before drawing.
type Shape struct {
	Name     string
	Vertices []vec.Vec2

	// Fill is the interior color, or nil to leave the interior unchanged.
	Fill *polyfill.Color

	// Outline is the boundary color, or nil to draw no boundary.
	Outline *polyfill.Color
}

// Pixels returns the vertices of s in integer pixel coordinates.
func (s *Shape) Pixels() []image.Point {
	return polyfill.PixelsOf(s.Vertices)
}

// BBox returns the smallest rectangle containing all pixels which s may
// touch.  The result is the zero rectangle if s has no vertices.
func (s *Shape) BBox() rect.Rect {
	if len(s.Vertices) == 0 {
		return rect.Rect{}
	}
	res := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range s.Pixels() {
		res.LLx = min(res.LLx, float64(p.X))
		res.LLy = min(res.LLy, float64(p.Y))
		res.URx = max(res.URx, float64(p.X+1))
		res.URy = max(res.URy, float64(p.Y+1))
	}
	return res
}

// Path returns s as a closed path, for use with vector graphics output.
func (s *Shape) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, v := range s.Vertices {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{v}) {
				return
			}
		}
		if len(s.Vertices) > 0 {
			yield(path.CmdClose, nil)
		}
	}
}

// Clone returns a deep copy of sc.
func (sc *Scene) Clone() Scene {
	res := *sc
	res.Shapes = make([]Shape, len(sc.Shapes))
	for i, s := range sc.Shapes {
		s.Vertices = slices.Clone(s.Vertices)
		if s.Fill != nil {
			c := *s.Fill
			s.Fill = &c
		}
		if s.Outline != nil {
			c := *s.Outline
			s.Outline = &c
		}
		res.Shapes[i] = s
	}
	return res
}

// Canvas returns the rectangle covered by the pixels of the scene.
func (sc *Scene) Canvas() rect.Rect {
	return rect.Rect{URx: float64(sc.Width), URy: float64(sc.Height)}
}

// ValidationError reports a malformed scene.
type ValidationError struct {
	Scene  string
	Shape  int // index into Shapes, or -1 for the scene itself
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Shape < 0 {
		return fmt.Sprintf("scene %q: %s", e.Scene, e.Reason)
	}
	return fmt.Sprintf("scene %q: shape %d: %s", e.Scene, e.Shape, e.Reason)
}

// Validate checks that the scene can be rendered.  Degenerate shapes are
// allowed; see [Scene.Issues] for those.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return &ValidationError{
			Scene:  sc.Name,
			Shape:  -1,
			Reason: fmt.Sprintf("invalid canvas size %dx%d", sc.Width, sc.Height),
		}
	}
	for i, s := range sc.Shapes {
		for _, v := range s.Vertices {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
				return &ValidationError{Scene: sc.Name, Shape: i, Reason: "vertex is not finite"}
			}
		}
	}
	return nil
}

// Issue describes a shape which leaves no trace, or only part of its
// trace, in the rendered image.
type Issue struct {
	Shape  int
	Name   string
	Reason string
}

// Issues lists the shapes which are partly or fully invisible.  These are
// rendered anyway; degenerate input never causes an error.
func (sc *Scene) Issues() []Issue {
	var res []Issue
	canvas := sc.Canvas()
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		add := func(reason string) {
			res = append(res, Issue{Shape: i, Name: s.Name, Reason: reason})
		}

		n := len(s.Vertices)
		switch {
		case s.Fill == nil && s.Outline == nil:
			add("no fill or outline color")
			continue
		case n < 2:
			add("fewer than 2 vertices")
			continue
		case n < 3 && s.Fill != nil:
			add("fewer than 3 vertices, fill skipped")
		}

		bbox := s.BBox()
		if bbox.URx <= canvas.LLx || bbox.LLx >= canvas.URx ||
			bbox.URy <= canvas.LLy || bbox.LLy >= canvas.URy {
			add("outside the canvas")
		}
	}
	return res
}
