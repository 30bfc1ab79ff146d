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
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
)

// ErrInvalidDimension is returned by NewBuffer if the width or the height
// is not positive.
var ErrInvalidDimension = errors.New("invalid buffer dimension")

// Buffer is a fixed-size array of packed pixels in row-major order.
// Pixel (x, y) is stored at Pix[y*Width()+x].
//
// All writes are bounds-checked: coordinates outside the buffer are
// silently ignored.
type Buffer struct {
	// Pix holds the pixel values.  The length never changes.
	Pix []Color

	width, height int

	background Color
	current    Color
}

// NewBuffer allocates a width×height buffer with all pixels set to 0.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Buffer{
		Pix:    make([]Color, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the number of pixel columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of pixel rows.
func (b *Buffer) Height() int { return b.height }

// SetBackground sets the color used by Clear.
func (b *Buffer) SetBackground(c Color) {
	b.background = c
}

// Background returns the color used by Clear.
func (b *Buffer) Background() Color {
	return b.background
}

// Clear sets every pixel to the background color.
func (b *Buffer) Clear() {
	for i := range b.Pix {
		b.Pix[i] = b.background
	}
}

// SetColor sets the color used by Point.
func (b *Buffer) SetColor(c Color) {
	b.current = c
}

// Point sets pixel (x, y) to the color most recently passed to SetColor.
func (b *Buffer) Point(x, y int) {
	b.Set(x, y, b.current)
}

// Set sets pixel (x, y) to c.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.Pix[y*b.width+x] = c
}

// ColorAt returns the value of pixel (x, y), or 0 if the coordinates are
// outside the buffer.
func (b *Buffer) ColorAt(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.Pix[y*b.width+x]
}

// hline sets the pixels x0, ..., x1 of row y to c, clipped to the buffer.
func (b *Buffer) hline(y, x0, x1 int, c Color) {
	if y < 0 || y >= b.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width-1)
	if x0 > x1 {
		return
	}
	row := b.Pix[y*b.width:]
	for x := x0; x <= x1; x++ {
		row[x] = c
	}
}

// FlipVertical reverses the order of the rows, so that row y and row
// Height()-1-y are exchanged.
func (b *Buffer) FlipVertical() {
	w := b.width
	for top, bot := 0, b.height-1; top < bot; top, bot = top+1, bot-1 {
		rowTop := b.Pix[top*w : (top+1)*w]
		rowBot := b.Pix[bot*w : (bot+1)*w]
		for x := range w {
			rowTop[x], rowBot[x] = rowBot[x], rowTop[x]
		}
	}
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	res := *b
	res.Pix = slices.Clone(b.Pix)
	return &res
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the [image.Image] interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.ColorAt(x, y)
}
