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
	"errors"
	"image"
	"image/color"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// recorder is a Surface which remembers all pixels set, including those
// outside its bounds.
type recorder struct {
	width, height int

	mu     sync.Mutex
	pixels map[image.Point]int
}

func newRecorder(width, height int) *recorder {
	return &recorder{
		width:  width,
		height: height,
		pixels: make(map[image.Point]int),
	}
}

func (r *recorder) Width() int  { return r.width }
func (r *recorder) Height() int { return r.height }

func (r *recorder) SetPixel(x, y int, _ color.Color) {
	r.mu.Lock()
	r.pixels[image.Point{X: x, Y: y}]++
	r.mu.Unlock()
}

func (r *recorder) has(x, y int) bool {
	return r.pixels[image.Point{X: x, Y: y}] > 0
}

func vecOf(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var unitSquare = rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}

func unitCircle(t float64) vec.Vec2 {
	return vecOf(math.Cos(t), math.Sin(t))
}

func TestParametricEvaluationCount(t *testing.T) {
	cases := []struct {
		a, b, step float64
		want       int
	}{
		{0, 1, 0.25, 5},
		{0, 1, 0.3, 4},
		{-2, 3, 0.5, 11},
		{0, 10, 1, 11},
		{0, 1, 2, 1},
		{0, 2 * math.Pi, 1.0 / 64, int(math.Floor(2*math.Pi*64)) + 1},
	}
	for _, c := range cases {
		var ts []float64
		f := func(t float64) vec.Vec2 {
			ts = append(ts, t)
			return vecOf(0, 0)
		}
		step, err := NewUniformStep(c.step)
		if err != nil {
			t.Fatal(err)
		}
		p := NewPlotter(unitSquare)
		if err := p.Parametric(newRecorder(20, 20), f, c.a, c.b, step); err != nil {
			t.Errorf("[%g, %g] step %g: %v", c.a, c.b, c.step, err)
			continue
		}
		if len(ts) != c.want {
			t.Errorf("[%g, %g] step %g: %d evaluations, want %d",
				c.a, c.b, c.step, len(ts), c.want)
			continue
		}
		if ts[0] != c.a {
			t.Errorf("first sample at %g, want %g", ts[0], c.a)
		}
		if ts[len(ts)-1] > c.b {
			t.Errorf("last sample at %g is beyond %g", ts[len(ts)-1], c.b)
		}
	}
}

func TestParametricInvalidDomain(t *testing.T) {
	step, _ := NewUniformStep(0.1)
	calls := 0
	f := func(t float64) vec.Vec2 {
		calls++
		return vecOf(t, t)
	}
	p := NewPlotter(unitSquare)
	for _, d := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.NaN()}, {0, math.Inf(1)}} {
		err := p.Parametric(newRecorder(10, 10), f, d[0], d[1], step)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("domain %v: got %v, want ErrInvalidArgument", d, err)
		}
	}
	if calls != 0 {
		t.Errorf("curve evaluated %d times for invalid domains", calls)
	}

	if err := p.Parametric(newRecorder(10, 10), f, 0, 1, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil step: got %v, want ErrInvalidArgument", err)
	}
}

func TestParametricZeroStep(t *testing.T) {
	step, err := NewUniformStep(0)
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	f := func(t float64) vec.Vec2 {
		calls++
		return unitCircle(t)
	}
	p := NewPlotter(unitSquare)
	err = p.Parametric(newRecorder(10, 10), f, 0, 1, step)
	if !errors.Is(err, ErrDegenerateStep) {
		t.Errorf("got %v, want ErrDegenerateStep", err)
	}
	if calls != 1 {
		t.Errorf("%d evaluations, want 1", calls)
	}
}

func TestParametricStationaryAdaptive(t *testing.T) {
	f := func(float64) vec.Vec2 { return vecOf(0.5, 0.5) }
	p := NewPlotter(unitSquare)
	err := p.Parametric(newRecorder(10, 10), f, 0, 1, NewAdaptiveStep(f))
	if !errors.Is(err, ErrDegenerateStep) {
		t.Errorf("got %v, want ErrDegenerateStep", err)
	}
}

// tinyStep returns a step which is too small to change t.
type tinyStep struct{}

func (tinyStep) StepAt(float64) float64 { return 1e-300 }

func TestParametricNoProgress(t *testing.T) {
	p := NewPlotter(unitSquare)
	err := p.Parametric(newRecorder(10, 10), unitCircle, 1, 2, tinyStep{})
	if !errors.Is(err, ErrDegenerateStep) {
		t.Errorf("got %v, want ErrDegenerateStep", err)
	}
}

func TestParametricMaxSamples(t *testing.T) {
	calls := 0
	f := func(t float64) vec.Vec2 {
		calls++
		return unitCircle(t)
	}
	step, _ := NewUniformStep(1.0 / 128)
	p := NewPlotter(unitSquare)
	p.MaxSamples = 10
	err := p.Parametric(newRecorder(10, 10), f, 0, 1, step)
	if !errors.Is(err, ErrDegenerateStep) {
		t.Errorf("got %v, want ErrDegenerateStep", err)
	}
	if calls != 10 {
		t.Errorf("%d evaluations, want 10", calls)
	}

	p.MaxSamples = 0
	calls = 0
	if err := p.Parametric(newRecorder(10, 10), f, 0, 1, step); err != nil {
		t.Errorf("unlimited samples: %v", err)
	}
	if calls != 129 {
		t.Errorf("%d evaluations, want 129", calls)
	}
}

func TestParametricCircle(t *testing.T) {
	const size = 200
	s := newRecorder(size, size)
	step, _ := NewUniformStep(0.01)
	p := NewPlotter(unitSquare)
	if err := p.Parametric(s, unitCircle, 0, 2*math.Pi, step); err != nil {
		t.Fatal(err)
	}

	// t = π lands on the left edge of the image
	if !s.has(0, 100) {
		t.Error("pixel (0, 100) not drawn")
	}

	const scale = 2.0 / size
	for pt := range s.pixels {
		// the curve point lies in the pixel cell, so the cell centre is
		// at most half a diagonal away from the circle
		x := (float64(pt.X) + 0.5 - size/2) * scale
		y := (float64(pt.Y) + 0.5 - size/2) * scale
		if d := math.Abs(math.Hypot(x, y) - 1); d > math.Sqrt2*scale/2+1e-12 {
			t.Errorf("pixel %v is %g away from the circle", pt, d)
		}
	}
}

func TestParametricAdaptiveSpacing(t *testing.T) {
	// samples of the spiral should be about one world unit apart
	spiral := func(t float64) vec.Vec2 {
		return vecOf(t*math.Cos(t), t*math.Sin(t))
	}
	p := NewPlotter(rect.Rect{LLx: -100, LLy: -100, URx: 100, URy: 100})
	samples, err := p.Samples(spiral, 0, 100, NewAdaptiveStep(spiral))
	if err != nil {
		t.Fatal(err)
	}
	if len(samples.Coords) < 1000 {
		t.Fatalf("only %d samples", len(samples.Coords))
	}
	// skip the inner turns, where the speed changes quickly relative
	// to the step size
	for i := 20; i < len(samples.Coords); i++ {
		d := samples.Coords[i].Sub(samples.Coords[i-1]).Length()
		if d < 0.9 || d > 1.1 {
			t.Errorf("samples %d and %d are %g apart", i-1, i, d)
			break
		}
	}
}

func TestSamples(t *testing.T) {
	step, _ := NewUniformStep(0.25)
	p := NewPlotter(unitSquare)
	samples, err := p.Samples(unitCircle, 0, 1, step)
	if err != nil {
		t.Fatal(err)
	}

	want := (&path.Data{}).MoveTo(unitCircle(0))
	for i := 1; i <= 4; i++ {
		want.LineTo(unitCircle(float64(i) * 0.25))
	}
	if !slices.Equal(samples.Cmds, want.Cmds) {
		t.Errorf("commands %v, want %v", samples.Cmds, want.Cmds)
	}
	if d := cmp.Diff(want.Coords, samples.Coords); d != "" {
		t.Errorf("samples differ (-want +got):\n%s", d)
	}
}

func TestImplicitCircle(t *testing.T) {
	const size = 200
	const scale = 2.0 / size
	f := func(x, y float64) float64 { return 1 - x*x - y*y }

	s := newRecorder(size, size)
	p := NewPlotter(unitSquare)
	if err := p.Implicit(s, f); err != nil {
		t.Fatal(err)
	}

	// the circumference is 2π/scale ≈ 628 pixels
	if n := len(s.pixels); n < 600 {
		t.Errorf("only %d pixels drawn", n)
	}

	for x := range size {
		for y := range size {
			var pos, neg int
			for i := range 2 {
				for j := range 2 {
					v := f(float64(x-size/2+i)*scale, float64(y-size/2+j)*scale)
					if v >= 0 {
						pos++
					}
					if v <= 0 {
						neg++
					}
				}
			}
			drawn := s.has(x, y)
			if drawn != (pos > 0 && neg > 0) {
				t.Errorf("pixel (%d, %d): drawn=%t, corner signs +%d -%d", x, y, drawn, pos, neg)
			}
			if !drawn {
				continue
			}

			cx := (float64(x) + 0.5 - size/2) * scale
			cy := (float64(y) + 0.5 - size/2) * scale
			if d := math.Abs(math.Hypot(cx, cy) - 1); d > math.Sqrt2*scale/2+1e-12 {
				t.Errorf("pixel (%d, %d) is %g away from the circle", x, y, d)
			}
		}
	}
}

func TestImplicitConstant(t *testing.T) {
	cases := []struct {
		value float64
		want  int
	}{
		{0, 100},
		{1, 0},
		{-1, 0},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		s := newRecorder(10, 10)
		p := NewPlotter(unitSquare)
		f := func(float64, float64) float64 { return c.value }
		if err := p.Implicit(s, f); err != nil {
			t.Fatal(err)
		}
		if len(s.pixels) != c.want {
			t.Errorf("f = %g: %d pixels drawn, want %d", c.value, len(s.pixels), c.want)
		}
	}
}

func TestFillLens(t *testing.T) {
	const size = 200
	var mu sync.Mutex
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	lens := func(x, y float64) bool {
		mu.Lock()
		xMin, xMax = min(xMin, x), max(xMax, x)
		yMin, yMax = min(yMin, y), max(yMax, y)
		mu.Unlock()
		return x+y > 1 && x*x+(y-1)*(y-1) <= 1 && (x-1)*(x-1)+y*y <= 1
	}

	s := newRecorder(size, size)
	p := NewPlotter(rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1})
	p.Origin = &image.Point{}
	if err := p.Fill(s, lens); err != nil {
		t.Fatal(err)
	}

	if xMin < 0 || xMax > 1 || yMin < 0 || yMax > 1 {
		t.Errorf("predicate evaluated on [%g, %g] × [%g, %g]", xMin, xMax, yMin, yMax)
	}
	if len(s.pixels) == 0 {
		t.Fatal("no pixels drawn")
	}
	for pt, n := range s.pixels {
		if n != 1 {
			t.Errorf("pixel %v drawn %d times", pt, n)
		}
	}

	// check that the pixels form one 8-connected component
	var start image.Point
	for pt := range s.pixels {
		start = pt
		break
	}
	seen := map[image.Point]bool{start: true}
	todo := []image.Point{start}
	for len(todo) > 0 {
		pt := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				q := image.Point{X: pt.X + dx, Y: pt.Y + dy}
				if s.has(q.X, q.Y) && !seen[q] {
					seen[q] = true
					todo = append(todo, q)
				}
			}
		}
	}
	if len(seen) != len(s.pixels) {
		t.Errorf("lens has %d pixels, but only %d are connected", len(s.pixels), len(seen))
	}
}

func TestFillQuadrant(t *testing.T) {
	s := newRecorder(200, 100)
	p := NewPlotter(unitSquare)
	if err := p.Fill(s, func(x, y float64) bool { return x >= 0 && y >= 0 }); err != nil {
		t.Fatal(err)
	}
	if len(s.pixels) != 100*50 {
		t.Errorf("%d pixels drawn, want %d", len(s.pixels), 100*50)
	}
	for pt := range s.pixels {
		if pt.X < 100 || pt.Y < 50 {
			t.Errorf("pixel %v drawn", pt)
		}
	}
}

func TestFillIdempotent(t *testing.T) {
	inside := func(x, y float64) bool {
		return math.Sin(7*x)*math.Cos(5*y) > 0.2
	}
	render := func() []byte {
		s := NewCanvas(64, 48, colornames.Black)
		p := NewPlotter(unitSquare)
		if err := p.Fill(s, inside); err != nil {
			t.Fatal(err)
		}
		return s.Img.(*image.RGBA).Pix
	}
	if !slices.Equal(render(), render()) {
		t.Error("repeated fill produced different images")
	}
}

func TestInvalidRegion(t *testing.T) {
	p := NewPlotter(rect.Rect{LLx: 1, LLy: 0, URx: 1, URy: 1})
	s := newRecorder(10, 10)
	step, _ := NewUniformStep(0.1)

	if err := p.Parametric(s, unitCircle, 0, 1, step); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Parametric: got %v, want ErrInvalidArgument", err)
	}
	if err := p.Implicit(s, func(x, y float64) float64 { return x }); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Implicit: got %v, want ErrInvalidArgument", err)
	}
	if err := p.Fill(s, func(x, y float64) bool { return true }); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Fill: got %v, want ErrInvalidArgument", err)
	}
	if len(s.pixels) != 0 {
		t.Errorf("%d pixels drawn", len(s.pixels))
	}

	p.Region = unitSquare
	if err := p.Fill(newRecorder(0, 10), func(x, y float64) bool { return true }); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty surface: got %v, want ErrInvalidArgument", err)
	}
}

func TestParametricClipped(t *testing.T) {
	// With the origin in the top-left corner, three quarters of the circle
	// lie at negative pixel coordinates.  These must be dropped, not
	// wrapped around to the far side of the image.
	s := NewCanvas(200, 200, colornames.Black)
	step, _ := NewUniformStep(0.01)
	p := NewPlotter(unitSquare)
	p.Origin = &image.Point{}
	if err := p.Parametric(s, unitCircle, 0, 2*math.Pi, step); err != nil {
		t.Fatal(err)
	}

	img := s.Img.(*image.RGBA)
	drawn := 0
	for y := range 200 {
		for x := range 200 {
			if img.RGBAAt(x, y) != colornames.White {
				continue
			}
			drawn++
			if x > 100 || y > 100 {
				t.Errorf("pixel (%d, %d) drawn", x, y)
			}
		}
	}
	if drawn == 0 {
		t.Error("no pixels drawn")
	}
}

func TestPlotterColor(t *testing.T) {
	s := NewCanvas(4, 4, colornames.Black)
	p := NewPlotter(unitSquare)
	p.Color = colornames.Orange
	if err := p.Fill(s, func(x, y float64) bool { return true }); err != nil {
		t.Fatal(err)
	}
	if c := s.Img.(*image.RGBA).RGBAAt(1, 2); c != colornames.Orange {
		t.Errorf("pixel colour %v, want orange", c)
	}
}
