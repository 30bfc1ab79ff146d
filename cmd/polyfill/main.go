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

// Command polyfill renders polygon scenes to bitmap files.
//
// Usage:
//
//	polyfill render --builtin star -o star.bmp
//	polyfill render --scene shapes.toml -o shapes.bmp
//	polyfill pdf --builtin star -o star.pdf
//	polyfill export --builtin star -o star.toml
//	polyfill list
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Render renderCmd `cmd:"" help:"Render a scene to a bitmap file."`
	PDF    pdfCmd    `cmd:"" name:"pdf" help:"Write a scene as a vector PDF, for comparison with the bitmap."`
	Export exportCmd `cmd:"" help:"Write a scene in TOML format."`
	List   listCmd   `cmd:"" help:"List the built-in scenes."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("polyfill"),
		kong.Description("Rasterise polygon scenes into 24-bit bitmap files."),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	err := kctx.Run(logger)
	if err != nil {
		logger.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}

// newLogger creates a logger which writes to w and filters messages at
// the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "polyfill",
	})
}
