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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/scene"
)

func TestSourceValidate(t *testing.T) {
	cases := []struct {
		src sceneSource
		ok  bool
	}{
		{sceneSource{}, false},
		{sceneSource{Builtin: "star"}, true},
		{sceneSource{Builtin: "no_such_scene"}, false},
		{sceneSource{Scene: "shapes.toml"}, true},
	}
	for _, c := range cases {
		err := c.src.Validate(nil)
		if (err == nil) != c.ok {
			t.Errorf("%+v: unexpected result %v", c.src, err)
		}
	}
}

func TestOutputPath(t *testing.T) {
	sc := &scene.Scene{Name: "star"}
	if got := outputPath("", sc, ".bmp"); got != "star.bmp" {
		t.Errorf("expected star.bmp, got %q", got)
	}
	if got := outputPath("out/x.bmp", sc, ".bmp"); got != "out/x.bmp" {
		t.Errorf("expected out/x.bmp, got %q", got)
	}
}

func TestCheckOverwrite(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "exists.bmp")
	if err := checkOverwrite(fileName, false); err != nil {
		t.Errorf("missing file: %v", err)
	}
	if err := os.WriteFile(fileName, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := checkOverwrite(fileName, false); err == nil {
		t.Error("existing file overwritten without --force")
	}
	if err := checkOverwrite(fileName, true); err != nil {
		t.Errorf("--force: %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "triangle.bmp")
	logs := &bytes.Buffer{}
	logger := newLogger(logs, log.InfoLevel)

	cmd := &renderCmd{
		sceneSource: sceneSource{Builtin: "triangle"},
		Output:      out,
	}
	if err := cmd.Run(logger); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "wrote bitmap") {
		t.Errorf("missing log message, got %q", logs.String())
	}

	fd, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	img, err := bmp.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}

	sc, _ := scene.Builtin("triangle")
	want, err := sc.Render()
	if err != nil {
		t.Fatal(err)
	}
	for y := range want.Height() {
		for x := range want.Width() {
			got := polyfill.ColorModel.Convert(img.At(x, y))
			if got != want.ColorAt(x, y) {
				t.Errorf("pixel (%d,%d): expected %s, got %s", x, y, want.ColorAt(x, y), got)
			}
		}
	}

	// a second run must not replace the file
	if err := cmd.Run(logger); err == nil {
		t.Error("existing output overwritten")
	}
	cmd.Force = true
	if err := cmd.Run(logger); err != nil {
		t.Error(err)
	}
}

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "exported.toml")
	logger := newLogger(io.Discard, log.InfoLevel)

	cmd := &exportCmd{
		sceneSource: sceneSource{Builtin: "overlap"},
		Output:      out,
	}
	if err := cmd.Run(logger); err != nil {
		t.Fatal(err)
	}

	got, err := scene.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := scene.Builtin("overlap")
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Errorf("exported scene mismatch (-want +got):\n%s", diff)
	}

	// the exported file can be used as a scene source
	src := sceneSource{Scene: out}
	loaded, err := src.load(logger)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "overlap" {
		t.Errorf("expected scene overlap, got %q", loaded.Name)
	}
}

func TestWritePDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pentagram.pdf")
	sc, _ := scene.Builtin("pentagram")
	if err := writePDF(&sc, out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("output has no end-of-file marker")
	}
}

func TestLoggerLevel(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := newLogger(logs, log.InfoLevel)
	logger.Debug("hidden")
	logger.Info("shown")

	if strings.Contains(logs.String(), "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(logs.String(), "shown") || !strings.Contains(logs.String(), "polyfill") {
		t.Errorf("unexpected log output %q", logs.String())
	}
}
