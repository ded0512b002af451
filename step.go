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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Curve is a parametric curve in world coordinates.
type Curve func(t float64) vec.Vec2

// DefaultDerivativeStep is the finite difference used by [NewAdaptiveStep]
// to estimate the curve velocity.
const DefaultDerivativeStep = 0.01

// A Stepper decides how far the curve parameter advances from t to the next
// sample.  The tracer rejects steps which are not strictly positive and
// finite, see [ErrDegenerateStep].
type Stepper interface {
	StepAt(t float64) float64
}

// UniformStep advances the curve parameter by a fixed amount.
type UniformStep struct {
	step float64
}

// NewUniformStep returns a Stepper which always advances by step.
// Negative steps are rejected.  A zero step is accepted here, but makes
// every trace fail with [ErrDegenerateStep].
func NewUniformStep(step float64) (*UniformStep, error) {
	if step < 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("%w: step size %g", ErrInvalidArgument, step)
	}
	return &UniformStep{step: step}, nil
}

// StepAt implements the [Stepper] interface.
func (u *UniformStep) StepAt(float64) float64 {
	return u.step
}

// AdaptiveStep chooses the parameter step inversely proportional to the
// speed of the curve, so that consecutive samples are approximately one
// world unit apart along the curve.
//
// The speed is estimated by the forward difference (F(t+H) - F(t)) / H.
// Where the estimate is zero, StepAt returns +Inf.
type AdaptiveStep struct {
	F Curve

	// H is the finite difference used for the derivative.
	// Must be positive.
	H float64
}

// NewAdaptiveStep returns an AdaptiveStep for f, using
// [DefaultDerivativeStep] for the derivative.
func NewAdaptiveStep(f Curve) *AdaptiveStep {
	return &AdaptiveStep{F: f, H: DefaultDerivativeStep}
}

// StepAt implements the [Stepper] interface.
func (a *AdaptiveStep) StepAt(t float64) float64 {
	d := a.derivative(t)
	return 1 / math.Hypot(d.X, d.Y)
}

func (a *AdaptiveStep) derivative(t float64) vec.Vec2 {
	p0 := a.F(t)
	p1 := a.F(t + a.H)
	return vec.Vec2{
		X: (p1.X - p0.X) / a.H,
		Y: (p1.Y - p0.Y) / a.H,
	}
}
