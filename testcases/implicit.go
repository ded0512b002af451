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

var implicitCases = []Scene{
	{
		Name:   "q1_implicit",
		Width:  200,
		Height: 200,
		Region: square(1),
		Op:     Implicit{F: unitCircle},
	},
	{
		Name:   "q4",
		Width:  200,
		Height: 200,
		Region: square(2),
		Op:     Implicit{F: ellipticCurve},
	},
	{
		Name:   "lemniscate",
		Width:  200,
		Height: 200,
		Region: square(1.5),
		Op:     Implicit{F: lemniscate},
	},
	{
		Name:   "folium",
		Width:  200,
		Height: 200,
		Region: square(3),
		Op:     Implicit{F: folium},
	},
}

// unitCircle is positive inside the unit circle and negative outside.
func unitCircle(x, y float64) float64 {
	return 1 - x*x - y*y
}

// ellipticCurve is the curve y² = x³ - x.
func ellipticCurve(x, y float64) float64 {
	return y*y - x*x*x + x
}

// lemniscate is the lemniscate of Bernoulli (x² + y²)² = 2(x² - y²).
func lemniscate(x, y float64) float64 {
	r2 := x*x + y*y
	return r2*r2 - 2*(x*x-y*y)
}

// folium is the folium of Descartes x³ + y³ = 3xy.
func folium(x, y float64) float64 {
	return x*x*x + y*y*y - 3*x*y
}
