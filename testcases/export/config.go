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
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/curves/testcases"
)

// config holds the settings of the export command.  Values from the
// configuration file are overridden by command line flags.
type config struct {
	// Out is the directory the images are written to.
	Out string `toml:"out"`

	// Workers is the number of goroutines used for implicit curves and
	// regions.
	Workers int `toml:"workers"`

	// Color and Background are colour names or #rrggbb values.
	Color      string `toml:"color"`
	Background string `toml:"background"`

	// Scenes restricts the output to the named scenes.
	// Empty means all scenes.
	Scenes []string `toml:"scenes"`

	// Samples enables writing samples.json.
	Samples bool `toml:"samples"`
}

func defaultConfig() *config {
	return &config{
		Out:        "data",
		Workers:    1,
		Color:      "white",
		Background: "black",
	}
}

// loadConfig reads a TOML configuration file.  Keys missing from the file
// keep their default values.
func loadConfig(fname string) (*config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// selectScenes returns the scenes named in cfg.Scenes, or all scenes if
// the list is empty.
func (cfg *config) selectScenes() ([]testcases.Scene, error) {
	if len(cfg.Scenes) == 0 {
		return allScenes(), nil
	}
	res := make([]testcases.Scene, 0, len(cfg.Scenes))
	for _, name := range cfg.Scenes {
		sc, ok := testcases.Find(name)
		if !ok {
			return nil, fmt.Errorf("unknown scene %q", name)
		}
		res = append(res, sc)
	}
	return res, nil
}
