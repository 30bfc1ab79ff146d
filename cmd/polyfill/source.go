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
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"seehuhn.de/go/polyfill/scene"
)

// sceneSource selects the scene to work on.
type sceneSource struct {
	Scene   string `short:"s" help:"Scene file in TOML format." type:"existingfile" xor:"source"`
	Builtin string `short:"b" help:"Name of a built-in scene (see 'polyfill list')." xor:"source"`
}

func (s *sceneSource) Validate(kctx *kong.Context) error {
	switch {
	case s.Scene == "" && s.Builtin == "":
		return fmt.Errorf("one of --scene or --builtin is required")
	case s.Builtin != "":
		if _, ok := scene.All[s.Builtin]; !ok {
			return fmt.Errorf("unknown built-in scene %q, available: %s",
				s.Builtin, strings.Join(scene.Names(), ", "))
		}
	}
	return nil
}

// load returns the selected scene and logs the shapes which will not be
// fully visible.
func (s *sceneSource) load(logger *log.Logger) (*scene.Scene, error) {
	var sc *scene.Scene
	if s.Builtin != "" {
		builtin, _ := scene.Builtin(s.Builtin)
		sc = &builtin
	} else {
		var err error
		sc, err = scene.Load(s.Scene)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("loaded scene", "name", sc.Name,
		"width", sc.Width, "height", sc.Height, "shapes", len(sc.Shapes))
	for _, issue := range sc.Issues() {
		logger.Warn("shape not fully drawn",
			"scene", sc.Name, "shape", issue.Shape, "name", issue.Name, "reason", issue.Reason)
	}
	return sc, nil
}

// outputPath returns the -o argument, or the scene name with the given
// extension if -o was not given.
func outputPath(out string, sc *scene.Scene, ext string) string {
	if out != "" {
		return out
	}
	return sc.Name + ext
}

// checkOverwrite refuses to replace an existing file unless force is set.
func checkOverwrite(fileName string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(fileName); err == nil {
		return fmt.Errorf("destination file already exists: %q (use --force)", fileName)
	}
	return nil
}
