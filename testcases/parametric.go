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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var parametricCases = []Scene{
	{
		Name:   "q1_parametric",
		Width:  200,
		Height: 200,
		Region: square(1),
		Op:     Parametric{F: circle(1), A: 0, B: 2 * math.Pi, Step: 0.01},
	},
	{
		Name:   "q2_uniform",
		Width:  200,
		Height: 200,
		Region: square(100),
		Op:     Parametric{F: spiral, A: 0, B: 100, Step: 1},
	},
	{
		Name:   "q2_adaptive",
		Width:  200,
		Height: 200,
		Region: square(100),
		Op:     Parametric{F: spiral, A: 0, B: 100, Adaptive: true},
	},
	{
		Name:   "lissajous",
		Width:  200,
		Height: 200,
		Region: square(1.2),
		Op:     Parametric{F: lissajous(3, 4), A: 0, B: 2 * math.Pi, Step: 1.0 / 1024},
	},
	{
		Name:   "cardioid",
		Width:  200,
		Height: 200,
		Region: square(2.2),
		Op:     Parametric{F: cardioid, A: 0, B: 2 * math.Pi, Step: 1.0 / 512},
	},
	{
		Name:   "astroid",
		Width:  200,
		Height: 200,
		Region: square(1.1),
		Op:     Parametric{F: astroid, A: 0, B: 2 * math.Pi, Step: 1.0 / 256},
	},
}

// circle returns a circle of radius r around the origin, traced once for
// t in [0, 2π].
func circle(r float64) func(float64) vec.Vec2 {
	return func(t float64) vec.Vec2 {
		return pt(r*math.Cos(t), r*math.Sin(t))
	}
}

// spiral is the Archimedean spiral (t cos t, t sin t).  Its speed grows
// with t, so that uniform steps leave gaps on the outer turns.
func spiral(t float64) vec.Vec2 {
	return pt(t*math.Cos(t), t*math.Sin(t))
}

func lissajous(a, b float64) func(float64) vec.Vec2 {
	return func(t float64) vec.Vec2 {
		return pt(math.Sin(a*t+math.Pi/2), math.Sin(b*t))
	}
}

func cardioid(t float64) vec.Vec2 {
	r := 1 - math.Cos(t)
	return pt(r*math.Cos(t), r*math.Sin(t))
}

func astroid(t float64) vec.Vec2 {
	c, s := math.Cos(t), math.Sin(t)
	return pt(c*c*c, s*s*s)
}
