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
	"fmt"

	"seehuhn.de/go/polyfill"
)

// Render draws the scene into a new buffer.
//
// The buffer is cleared to the background color, then every shape is
// filled and outlined in order.  Finally the buffer is flipped vertically,
// so that it is ready for [polyfill.WriteFile] and vertex y-coordinates
// count upwards from the bottom of the image.
func (sc *Scene) Render() (*polyfill.Buffer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	b, err := polyfill.NewBuffer(sc.Width, sc.Height)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", sc.Name, err)
	}
	b.SetBackground(sc.Background)
	b.Clear()

	r := polyfill.NewRasteriser()
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		pts := s.Pixels()
		if s.Fill != nil {
			r.FillPolygon(b, pts, *s.Fill)
		}
		if s.Outline != nil {
			polyfill.DrawOutline(b, pts, *s.Outline)
		}
	}

	b.FlipVertical()
	return b, nil
}
