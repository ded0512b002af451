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

package curves

import (
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ComputeScale returns the size of one pixel in world coordinates, when the
// region is mapped onto a surface of the given dimensions.
// The region's x-range is LLx to URx, the y-range is LLy to URy.
func ComputeScale(width, height int, region rect.Rect) (scaleX, scaleY float64) {
	scaleX = (region.URx - region.LLx) / float64(width)
	scaleY = (region.URy - region.LLy) / float64(height)
	return scaleX, scaleY
}

// CheckRegion verifies that region has finite coordinates and a non-empty
// interior.
func CheckRegion(region rect.Rect) error {
	for _, v := range []float64{region.LLx, region.LLy, region.URx, region.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: region %v is not finite", ErrInvalidArgument, region)
		}
	}
	if !(region.LLx < region.URx) || !(region.LLy < region.URy) {
		return fmt.Errorf("%w: region %v is empty", ErrInvalidArgument, region)
	}
	return nil
}

// maxPixelCoord bounds the pixel positions which are converted to int.
// Anything further out is off every realistic surface.
const maxPixelCoord = 1 << 30

// mapping converts between pixel coordinates and world coordinates.
// The origin (cx, cy) is the pixel position of the world point (0, 0).
type mapping struct {
	scaleX, scaleY float64
	cx, cy         float64
}

func newMapping(width, height int, region rect.Rect, origin *image.Point) mapping {
	sx, sy := ComputeScale(width, height, region)
	o := image.Point{X: width / 2, Y: height / 2}
	if origin != nil {
		o = *origin
	}
	return mapping{
		scaleX: sx,
		scaleY: sy,
		cx:     float64(o.X),
		cy:     float64(o.Y),
	}
}

// toWorld maps the pixel position (x, y) to world coordinates.
// Integer arguments give the corner of a pixel cell.
func (m mapping) toWorld(x, y float64) (float64, float64) {
	return (x - m.cx) * m.scaleX, (y - m.cy) * m.scaleY
}

// toPixel maps a world point to the pixel containing it, truncating towards
// zero.  The result is false if the position is not finite or too large to
// represent.
func (m mapping) toPixel(p vec.Vec2) (x, y int, ok bool) {
	px := m.cx + p.X/m.scaleX
	py := m.cy + p.Y/m.scaleY
	if !(math.Abs(px) < maxPixelCoord) || !(math.Abs(py) < maxPixelCoord) {
		return 0, 0, false
	}
	return int(px), int(py), true
}
