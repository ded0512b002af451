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
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
)

var regionCases = []Scene{
	{
		Name:   "q3",
		Width:  200,
		Height: 200,
		Region: rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1},
		Origin: &image.Point{},
		Op:     Fill{Inside: lens},
	},
	{
		Name:   "annulus",
		Width:  200,
		Height: 200,
		Region: square(1),
		Op:     Fill{Inside: annulus(0.5, 0.9)},
	},
	{
		Name:   "triangle",
		Width:  200,
		Height: 200,
		Region: square(1),
		Op:     Fill{Inside: triangle(-0.8, 0.6, 0, -0.8, 0.8, 0.6)},
	},
	{
		Name:   "checkerboard",
		Width:  200,
		Height: 200,
		Region: square(1),
		Op:     Fill{Inside: checkerboard(0.25)},
	},
}

// lens is the part of the intersection of the unit discs around (0, 1)
// and (1, 0) which lies above the line x + y = 1.
func lens(x, y float64) bool {
	return x+y > 1 && x*x+(y-1)*(y-1) <= 1 && (x-1)*(x-1)+y*y <= 1
}

func annulus(r0, r1 float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		r2 := x*x + y*y
		return r2 >= r0*r0 && r2 <= r1*r1
	}
}

// triangle returns the closed triangle with the given corners.
func triangle(x1, y1, x2, y2, x3, y3 float64) func(x, y float64) bool {
	side := func(ax, ay, bx, by, x, y float64) float64 {
		return (bx-ax)*(y-ay) - (by-ay)*(x-ax)
	}
	return func(x, y float64) bool {
		d1 := side(x1, y1, x2, y2, x, y)
		d2 := side(x2, y2, x3, y3, x, y)
		d3 := side(x3, y3, x1, y1, x, y)
		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		return !(hasNeg && hasPos)
	}
}

func checkerboard(size float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		i := int(math.Floor(x / size))
		j := int(math.Floor(y / size))
		return (i+j)%2 == 0
	}
}
