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
	"time"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/polyfill"
)

type renderCmd struct {
	sceneSource

	Output string `short:"o" help:"Output bitmap file. Defaults to the scene name with extension .bmp." type:"path"`
	Force  bool   `short:"f" help:"Overwrite an existing output file."`
}

func (c *renderCmd) Run(logger *log.Logger) error {
	sc, err := c.load(logger)
	if err != nil {
		return err
	}
	out := outputPath(c.Output, sc, ".bmp")
	if err := checkOverwrite(out, c.Force); err != nil {
		return err
	}

	start := time.Now()
	buf, err := sc.Render()
	if err != nil {
		return err
	}
	logger.Debug("rendered", "scene", sc.Name, "elapsed", time.Since(start).Round(time.Microsecond))

	if 3*buf.Width()%4 != 0 {
		logger.Warn("rows are not padded, some viewers will reject the file",
			"width", buf.Width())
	}

	if err := polyfill.WriteFile(out, buf); err != nil {
		return err
	}
	logger.Info("wrote bitmap", "file", out,
		"width", buf.Width(), "height", buf.Height(), "bytes", polyfill.EncodedSize(buf))
	return nil
}
