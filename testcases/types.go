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

// Package testcases contains a catalogue of example scenes for the curve
// and region rasterizer.  The scenes are used by the tests, the benchmarks
// and the export command.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene defines a single drawing.
type Scene struct {
	Name   string       // lowercase a-z, 0-9 and _ only
	Width  int          // canvas width in pixels
	Height int          // canvas height in pixels
	Region rect.Rect    // world rectangle mapped onto the canvas
	Origin *image.Point // pixel position of the world origin (nil means canvas centre)
	Op     Operation    // what to draw
}

// Operation is the drawing operation of a scene.
type Operation interface {
	isOperation()
}

// Parametric draws the curve F for parameter values from A to B.
type Parametric struct {
	F        func(t float64) vec.Vec2
	A, B     float64
	Step     float64 // fixed parameter step, used if Adaptive is false
	Adaptive bool    // choose steps from the curve speed
	H        float64 // finite difference for adaptive steps (0 means default)
}

func (Parametric) isOperation() {}

// Implicit draws the zero set of F.
type Implicit struct {
	F func(x, y float64) float64
}

func (Implicit) isOperation() {}

// Fill draws all points for which Inside returns true.
type Fill struct {
	Inside func(x, y float64) bool
}

func (Fill) isOperation() {}

// square returns the region [-r, r] × [-r, r].
func square(r float64) rect.Rect {
	return rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
