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

// Package curves rasterizes plane curves and regions onto raster images.
//
// Three kinds of objects are supported.  Parametric curves t ↦ (x(t), y(t))
// are sampled along their parameter, using a [Stepper] to choose the
// distance between samples.  Implicit curves f(x, y) = 0 are located by
// sign changes of f between the four corners of each pixel cell.  Regions
// are given by a membership predicate which is evaluated once per pixel.
//
// A [Plotter] maps a rectangle in world coordinates onto the pixels of a
// [Surface].  No anti-aliasing is performed: every pixel is either drawn
// in the plotter colour or left untouched.
package curves

//go:generate go run ./testcases/export -out data

import (
	"fmt"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/curves/testcases"
)

// RenderScene draws a catalogue scene onto s.  The region and origin are
// taken from the scene, colour, sample limit and worker count from p.
// If p is nil, the defaults of [NewPlotter] are used.
func RenderScene(sc testcases.Scene, s Surface, p *Plotter) error {
	q := scenePlotter(sc, p)

	switch op := sc.Op.(type) {
	case testcases.Parametric:
		step, err := sceneStepper(op)
		if err != nil {
			return err
		}
		return q.Parametric(s, op.F, op.A, op.B, step)
	case testcases.Implicit:
		return q.Implicit(s, op.F)
	case testcases.Fill:
		return q.Fill(s, op.Inside)
	default:
		return fmt.Errorf("%w: unknown operation %T", ErrInvalidArgument, sc.Op)
	}
}

// SampleScene returns the sampled polyline of a parametric scene, in world
// coordinates.
func SampleScene(sc testcases.Scene, p *Plotter) (*path.Data, error) {
	op, ok := sc.Op.(testcases.Parametric)
	if !ok {
		return nil, fmt.Errorf("%w: scene %q is not parametric", ErrInvalidArgument, sc.Name)
	}
	step, err := sceneStepper(op)
	if err != nil {
		return nil, err
	}
	q := scenePlotter(sc, p)
	return q.Samples(op.F, op.A, op.B, step)
}

func scenePlotter(sc testcases.Scene, p *Plotter) *Plotter {
	var q Plotter
	if p != nil {
		q = *p
	} else {
		q = *NewPlotter(sc.Region)
	}
	q.Region = sc.Region
	q.Origin = sc.Origin
	return &q
}

func sceneStepper(op testcases.Parametric) (Stepper, error) {
	if op.Adaptive {
		a := NewAdaptiveStep(op.F)
		if op.H > 0 {
			a.H = op.H
		}
		return a, nil
	}
	u, err := NewUniformStep(op.Step)
	if err != nil {
		return nil, err
	}
	return u, nil
}
