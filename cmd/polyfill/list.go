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
	"os"
	"text/tabwriter"

	"seehuhn.de/go/polyfill/scene"
)

type listCmd struct{}

func (c *listCmd) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tSHAPES")
	for _, name := range scene.Names() {
		sc := scene.All[name]
		fmt.Fprintf(w, "%s\t%dx%d\t%d\n", name, sc.Width, sc.Height, len(sc.Shapes))
	}
	return w.Flush()
}
