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
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ImplicitFunc defines the implicit curve f(x, y) = 0.
type ImplicitFunc func(x, y float64) float64

// Predicate reports whether the world point (x, y) belongs to a region.
type Predicate func(x, y float64) bool

// DefaultMaxSamples is the default limit on the number of samples of a
// parametric curve.
const DefaultMaxSamples = 1 << 24

// Plotter draws curves and regions onto a [Surface].  The world rectangle
// Region is mapped onto the whole surface, so that one pixel covers
// (Region.URx-Region.LLx)/width by (Region.URy-Region.LLy)/height world
// units.
//
// A Plotter holds no state between calls; the same Plotter can be used for
// any number of surfaces.  Callers must not draw onto the same surface from
// several goroutines at once.
type Plotter struct {
	// Region is the rectangle in world coordinates which is mapped onto
	// the surface.  Must have finite coordinates and a non-empty interior.
	Region rect.Rect

	// Origin is the pixel position of the world point (0, 0).
	// Nil means the centre of the surface, (width/2, height/2).
	Origin *image.Point

	// Color is used for all pixels drawn.
	Color color.Color

	// MaxSamples bounds the number of samples taken along a parametric
	// curve.  Zero or negative means no limit.
	MaxSamples int

	// Workers is the number of goroutines used by Implicit and Fill.
	// Values below 2 mean that all work is done on the calling goroutine.
	Workers int
}

// NewPlotter returns a Plotter for the given world region, drawing in white
// with a single worker.
func NewPlotter(region rect.Rect) *Plotter {
	return &Plotter{
		Region:     region,
		Color:      colornames.White,
		MaxSamples: DefaultMaxSamples,
		Workers:    1,
	}
}

// Parametric draws the curve f for parameter values between a and b.
//
// Samples are taken at t = a, then at t + step.StepAt(t), for as long as
// t <= b.  Every sample evaluates f exactly once and sets the pixel
// containing f(t).  Samples which map to non-finite pixel positions are
// skipped.
//
// An error wrapping [ErrInvalidArgument] is returned if a >= b, and
// [ErrDegenerateStep] is returned if the curve cannot be traced to the end.
// In the latter case, the samples before the failure have already been
// drawn.
func (p *Plotter) Parametric(s Surface, f Curve, a, b float64, step Stepper) error {
	m, err := p.mapping(s)
	if err != nil {
		return err
	}

	c := p.color()
	drawn := 0
	n, err := p.march(f, a, b, step, func(v vec.Vec2) {
		if x, y, ok := m.toPixel(v); ok {
			s.SetPixel(x, y, c)
			drawn++
		}
	})
	Logger().Debug("parametric curve",
		"width", s.Width(), "height", s.Height(),
		"samples", n, "drawn", drawn)
	return err
}

// Samples returns the points of the curve f which [Plotter.Parametric]
// would draw, as a polyline in world coordinates.  Only the MaxSamples
// field of p is used.
func (p *Plotter) Samples(f Curve, a, b float64, step Stepper) (*path.Data, error) {
	res := &path.Data{}
	first := true
	_, err := p.march(f, a, b, step, func(v vec.Vec2) {
		if first {
			res.MoveTo(v)
			first = false
		} else {
			res.LineTo(v)
		}
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// march walks the parameter range [a, b] and calls visit with f(t) for
// every sample.  It returns the number of samples taken.
func (p *Plotter) march(f Curve, a, b float64, step Stepper, visit func(vec.Vec2)) (int, error) {
	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("%w: parameter domain [%g, %g] is empty or unbounded",
			ErrInvalidArgument, a, b)
	}
	if f == nil || step == nil {
		return 0, fmt.Errorf("%w: missing curve or step strategy", ErrInvalidArgument)
	}

	n := 0
	t := a
	for t <= b {
		if p.MaxSamples > 0 && n >= p.MaxSamples {
			return n, fmt.Errorf("%w: more than %d samples for t in [%g, %g]",
				ErrDegenerateStep, p.MaxSamples, a, b)
		}
		visit(f(t))
		n++

		dt := step.StepAt(t)
		if !(dt > 0) || math.IsInf(dt, 0) {
			return n, fmt.Errorf("%w: step %g at t=%g", ErrDegenerateStep, dt, t)
		}
		next := t + dt
		if next == t {
			return n, fmt.Errorf("%w: step %g at t=%g is below the floating point resolution",
				ErrDegenerateStep, dt, t)
		}
		t = next
	}
	return n, nil
}

// Implicit draws the curve f(x, y) = 0.
//
// For every pixel, f is evaluated at the four corners of the pixel cell.
// The pixel is drawn if at least one value is >= 0 and at least one value
// is <= 0.  A value of exactly zero thus marks the pixel on its own, while
// NaN values are ignored.  The crossing is not interpolated within the cell.
func (p *Plotter) Implicit(s Surface, f ImplicitFunc) error {
	m, err := p.mapping(s)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: missing implicit function", ErrInvalidArgument)
	}

	c := p.color()
	drawn := forEachPixel(s.Width(), s.Height(), p.Workers, func(x, y int) bool {
		var hasPos, hasNeg bool
		for i := range 2 {
			for j := range 2 {
				v := f(m.toWorld(float64(x+i), float64(y+j)))
				if v >= 0 {
					hasPos = true
				}
				if v <= 0 {
					hasNeg = true
				}
			}
		}
		if !hasPos || !hasNeg {
			return false
		}
		s.SetPixel(x, y, c)
		return true
	})
	Logger().Debug("implicit curve",
		"width", s.Width(), "height", s.Height(),
		"workers", p.Workers, "drawn", drawn)
	return nil
}

// Fill draws every pixel whose corner, in world coordinates, satisfies
// inside.  The predicate is evaluated exactly once per pixel.
func (p *Plotter) Fill(s Surface, inside Predicate) error {
	m, err := p.mapping(s)
	if err != nil {
		return err
	}
	if inside == nil {
		return fmt.Errorf("%w: missing region predicate", ErrInvalidArgument)
	}

	c := p.color()
	drawn := forEachPixel(s.Width(), s.Height(), p.Workers, func(x, y int) bool {
		if !inside(m.toWorld(float64(x), float64(y))) {
			return false
		}
		s.SetPixel(x, y, c)
		return true
	})
	Logger().Debug("region",
		"width", s.Width(), "height", s.Height(),
		"workers", p.Workers, "drawn", drawn)
	return nil
}

func (p *Plotter) mapping(s Surface) (mapping, error) {
	if err := CheckRegion(p.Region); err != nil {
		return mapping{}, err
	}
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return mapping{}, fmt.Errorf("%w: empty surface %dx%d", ErrInvalidArgument, w, h)
	}
	return newMapping(w, h, p.Region, p.Origin), nil
}

func (p *Plotter) color() color.Color {
	if p.Color == nil {
		return colornames.White
	}
	return p.Color
}
