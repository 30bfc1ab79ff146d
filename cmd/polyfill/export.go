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
	"io"
	"os"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/polyfill/scene"
)

type exportCmd struct {
	sceneSource

	Output string `short:"o" help:"Output TOML file. Writes to standard output if not given." type:"path"`
	Force  bool   `short:"f" help:"Overwrite an existing output file."`
}

func (c *exportCmd) Run(logger *log.Logger) (err error) {
	sc, err := c.load(logger)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Output != "" {
		if err := checkOverwrite(c.Output, c.Force); err != nil {
			return err
		}
		fd, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("could not create %q: %w", c.Output, err)
		}
		defer func() {
			if cerr := fd.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("could not close %q: %w", c.Output, cerr)
			}
		}()
		w = fd
	}

	if err := scene.Encode(w, sc); err != nil {
		return fmt.Errorf("could not encode scene %q: %w", sc.Name, err)
	}
	if c.Output != "" {
		logger.Info("wrote scene", "file", c.Output, "shapes", len(sc.Shapes))
	}
	return nil
}
