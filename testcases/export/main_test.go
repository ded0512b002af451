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

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "export.toml")
	body := []byte(`out = "images"
workers = 4
color = "red"
scenes = ["q3", "q4"]
`)
	if err := os.WriteFile(fname, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	want := &config{
		Out:        "images",
		Workers:    4,
		Color:      "red",
		Background: "black",
		Scenes:     []string{"q3", "q4"},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("configuration differs (-want +got):\n%s", d)
	}
}

func TestSelectScenes(t *testing.T) {
	cfg := defaultConfig()
	all, err := cfg.selectScenes()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(allScenes()) {
		t.Errorf("got %d scenes, want %d", len(all), len(allScenes()))
	}

	cfg.Scenes = []string{"q1_implicit"}
	sel, err := cfg.selectScenes()
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 1 || sel[0].Name != "q1_implicit" {
		t.Errorf("unexpected selection %v", sel)
	}

	cfg.Scenes = []string{"no_such_scene"}
	if _, err := cfg.selectScenes(); err == nil {
		t.Error("unknown scene accepted")
	}
}

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.Out = t.TempDir()
	cfg.Scenes = []string{"q1_parametric", "q3"}
	cfg.Samples = true

	if err := run(cfg, discardLogger()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"q1_parametric.png", "q3.png", "samples.json"} {
		if _, err := os.Stat(filepath.Join(cfg.Out, name)); err != nil {
			t.Error(err)
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
