// seehuhn.de/go/curves - rasterize plane curves and regions
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

// Command export renders the scenes of the test catalogue to PNG files.
//
// Usage:
//
//	export [-config file.toml] [-out dir] [-workers n] [-samples] [-v] [scene ...]
//
// Scenes can be selected by name, either on the command line or in the
// configuration file; by default all scenes are rendered.  With -samples,
// the sampled polylines of the parametric scenes are additionally written
// to samples.json in the output directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/curves"
	"seehuhn.de/go/curves/testcases"
)

func main() {
	configFile := flag.String("config", "", "TOML configuration file")
	outDir := flag.String("out", "", "output directory (default \"data\")")
	workers := flag.Int("workers", 0, "number of worker goroutines for implicit curves and regions")
	samples := flag.Bool("samples", false, "write the samples of parametric curves to samples.json")
	verbose := flag.Bool("v", false, "log every drawing operation")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	curves.SetLogger(logger)

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			logger.Error("cannot read configuration", "file", *configFile, "error", err)
			os.Exit(1)
		}
	}
	if *outDir != "" {
		cfg.Out = *outDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *samples {
		cfg.Samples = true
	}
	if flag.NArg() > 0 {
		cfg.Scenes = flag.Args()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

// run renders all selected scenes.  A failing scene does not prevent the
// others from being rendered.
func run(cfg *config, logger *slog.Logger) error {
	scenes, err := cfg.selectScenes()
	if err != nil {
		return err
	}
	fg, err := curves.ParseColor(cfg.Color)
	if err != nil {
		return err
	}
	bg, err := curves.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0755); err != nil {
		return err
	}

	p := curves.NewPlotter(rect.Rect{})
	p.Color = fg
	p.Workers = cfg.Workers

	var failed int
	var out struct {
		Curves []jsonCurve `json:"curves"`
	}
	for _, sc := range scenes {
		fname := filepath.Join(cfg.Out, sc.Name+".png")
		canvas := curves.NewCanvas(sc.Width, sc.Height, bg)
		if err := curves.RenderScene(sc, canvas, p); err != nil {
			logger.Error("cannot render scene", "scene", sc.Name, "error", err)
			failed++
			continue
		}
		if err := canvas.SavePNG(fname); err != nil {
			logger.Error("cannot save image", "file", fname, "error", err)
			failed++
			continue
		}
		logger.Info("wrote image", "scene", sc.Name, "file", fname)

		if _, ok := sc.Op.(testcases.Parametric); ok && cfg.Samples {
			pts, err := curves.SampleScene(sc, p)
			if err != nil {
				logger.Error("cannot sample scene", "scene", sc.Name, "error", err)
				failed++
				continue
			}
			out.Curves = append(out.Curves, jsonCurve{Name: sc.Name, Path: pathToJSON(pts)})
		}
	}

	if cfg.Samples {
		if err := writeJSON(filepath.Join(cfg.Out, "samples.json"), out); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(scenes))
	}
	return nil
}

// allScenes returns all catalogue scenes, ordered by category.
func allScenes() []testcases.Scene {
	var res []testcases.Scene
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		res = append(res, testcases.All[category]...)
	}
	return res
}

type jsonCurve struct {
	Name string        `json:"name"`
	Path []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func pathToJSON(p *path.Data) []jsonSegment {
	segs := make([]jsonSegment, 0, len(p.Cmds))
	coordIdx := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		default:
			// sampled polylines contain only MoveTo and LineTo
			continue
		}
		pt := p.Coords[coordIdx]
		coordIdx++
		seg.Pts = [][]float64{{pt.X, pt.Y}}
		segs = append(segs, seg)
	}
	return segs
}

func writeJSON(fname string, v any) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
