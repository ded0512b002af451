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
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// bandsPerWorker is the number of column bands per worker.
const bandsPerWorker = 4

// forEachPixel calls fn for every pixel of a width × height grid, in
// column-major order, and returns the number of calls which returned true.
//
// With workers > 1 the columns are split into bands which are processed
// concurrently; every pixel is still visited exactly once.  A panic in fn
// is re-raised on the calling goroutine after all bands have finished.
func forEachPixel(width, height, workers int, fn func(x, y int) bool) int {
	if workers <= 1 || width < 2 {
		n := 0
		for x := range width {
			for y := range height {
				if fn(x, y) {
					n++
				}
			}
		}
		return n
	}

	nBands := min(width, workers*bandsPerWorker)

	var (
		count     atomic.Int64
		panicOnce sync.Once
		panicVal  any
		panicked  bool
	)

	var g errgroup.Group
	g.SetLimit(workers)
	for band := range nBands {
		x0 := band * width / nBands
		x1 := (band + 1) * width / nBands
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() {
						panicVal = r
						panicked = true
					})
				}
			}()

			n := 0
			for x := x0; x < x1; x++ {
				for y := range height {
					if fn(x, y) {
						n++
					}
				}
			}
			count.Add(int64(n))
			return nil
		})
	}
	_ = g.Wait()

	if panicked {
		panic(panicVal)
	}
	return int(count.Load())
}
