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
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/scene"
)

type pdfCmd struct {
	sceneSource

	Output string `short:"o" help:"Output PDF file. Defaults to the scene name with extension .pdf." type:"path"`
	Force  bool   `short:"f" help:"Overwrite an existing output file."`
}

func (c *pdfCmd) Run(logger *log.Logger) error {
	sc, err := c.load(logger)
	if err != nil {
		return err
	}
	out := outputPath(c.Output, sc, ".pdf")
	if err := checkOverwrite(out, c.Force); err != nil {
		return err
	}

	if err := writePDF(sc, out); err != nil {
		return fmt.Errorf("scene %q: %w", sc.Name, err)
	}
	logger.Info("wrote PDF", "file", out, "shapes", len(sc.Shapes))
	return nil
}

// writePDF draws the scene as vector graphics on a single page, with one
// PDF unit per pixel.  Shapes are filled with the even-odd rule, as in the
// bitmap renderer.
func writePDF(sc *scene.Scene, fileName string) error {
	paper := &pdf.Rectangle{
		URx: float64(sc.Width),
		URy: float64(sc.Height),
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfColor(sc.Background))
	page.Rectangle(0, 0, float64(sc.Width), float64(sc.Height))
	page.Fill()

	// Pixel (x, y) covers the unit square with lower left corner (x, y);
	// move vertices to the pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})
	page.SetLineWidth(1)

	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		if s.Fill != nil && len(s.Vertices) >= 3 {
			page.SetFillColor(pdfColor(*s.Fill))
			addPath(page, s.Path())
			page.FillEvenOdd()
		}
		if s.Outline != nil && len(s.Vertices) >= 2 {
			page.SetStrokeColor(pdfColor(*s.Outline))
			addPath(page, s.Path())
			page.Stroke()
		}
	}

	return page.Close()
}

func addPath(page *document.Page, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func pdfColor(c polyfill.Color) color.Color {
	r, g, b := c.RGB()
	return color.DeviceRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}
