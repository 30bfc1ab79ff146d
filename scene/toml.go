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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyfill"
)

// sceneFile is the TOML representation of a Scene.
//
//	width = 800
//	height = 600
//	background = "#000000"
//
//	[[shape]]
//	name = "star"
//	fill = "#FFC857"
//	outline = "#FFFFFF"
//	vertices = [[165, 380, 0], [185, 360, 0], [180, 330, 0]]
type sceneFile struct {
	Name       string         `toml:"name,omitempty"`
	Width      int            `toml:"width"`
	Height     int            `toml:"height"`
	Background polyfill.Color `toml:"background"`
	Shapes     []shapeFile    `toml:"shape"`
}

type shapeFile struct {
	Name     string          `toml:"name,omitempty"`
	Fill     *polyfill.Color `toml:"fill,omitempty"`
	Outline  *polyfill.Color `toml:"outline,omitempty"`
	Vertices [][]float64     `toml:"vertices"`
}

// Load reads a scene from a TOML file.  If the file does not set a name,
// the base name of the file without extension is used.
func Load(fileName string) (*Scene, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	sc, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if sc.Name == "" {
		base := filepath.Base(fileName)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

// Decode reads a scene in TOML format from r.
// Unknown keys are an error.  Vertices have two coordinates, or three
// coordinates where the third one is ignored.
func Decode(r io.Reader) (*Scene, error) {
	var in sceneFile
	md, err := toml.NewDecoder(r).Decode(&in)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &ValidationError{
			Scene:  in.Name,
			Shape:  -1,
			Reason: "unknown keys " + strings.Join(keys, ", "),
		}
	}

	sc := &Scene{
		Name:       in.Name,
		Width:      in.Width,
		Height:     in.Height,
		Background: in.Background,
		Shapes:     make([]Shape, len(in.Shapes)),
	}
	for i, s := range in.Shapes {
		vv := make([]vec.Vec2, len(s.Vertices))
		for j, coords := range s.Vertices {
			if len(coords) != 2 && len(coords) != 3 {
				return nil, &ValidationError{
					Scene:  in.Name,
					Shape:  i,
					Reason: fmt.Sprintf("vertex %d has %d coordinates", j, len(coords)),
				}
			}
			vv[j] = vec.Vec2{X: coords[0], Y: coords[1]}
		}
		sc.Shapes[i] = Shape{
			Name:     s.Name,
			Vertices: vv,
			Fill:     s.Fill,
			Outline:  s.Outline,
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Encode writes sc to w in TOML format.
func Encode(w io.Writer, sc *Scene) error {
	out := sceneFile{
		Name:       sc.Name,
		Width:      sc.Width,
		Height:     sc.Height,
		Background: sc.Background,
		Shapes:     make([]shapeFile, len(sc.Shapes)),
	}
	for i, s := range sc.Shapes {
		coords := make([][]float64, len(s.Vertices))
		for j, v := range s.Vertices {
			coords[j] = []float64{v.X, v.Y}
		}
		out.Shapes[i] = shapeFile{
			Name:     s.Name,
			Fill:     s.Fill,
			Outline:  s.Outline,
			Vertices: coords,
		}
	}
	return toml.NewEncoder(w).Encode(out)
}
