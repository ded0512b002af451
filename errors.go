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

import "errors"

var (
	// ErrInvalidArgument is returned for malformed input, for example an
	// empty parameter domain, an empty region or a negative step size.
	ErrInvalidArgument = errors.New("curves: invalid argument")

	// ErrDegenerateStep is returned when tracing a parametric curve cannot
	// make progress: the step size is zero, negative, infinite or NaN, or
	// the number of samples exceeds the configured limit.
	ErrDegenerateStep = errors.New("curves: degenerate step")
)
