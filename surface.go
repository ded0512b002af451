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
	"image/png"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// Surface is a rectangular grid of pixels which can be drawn on.
//
// SetPixel must silently ignore coordinates outside [0, Width()) × [0, Height()).
// When a [Plotter] uses more than one worker, SetPixel is called
// concurrently for distinct pixels.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.Color)
}

// ImageSurface adapts a [draw.Image] to the [Surface] interface.
// Pixel coordinates are relative to the minimum point of the image bounds.
type ImageSurface struct {
	Img draw.Image
}

// NewImageSurface returns a Surface which draws into img.
func NewImageSurface(img draw.Image) *ImageSurface {
	return &ImageSurface{Img: img}
}

// NewCanvas allocates an RGBA image of the given size, filled with the
// background colour.
func NewCanvas(width, height int, background color.Color) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &ImageSurface{Img: img}
}

// Width implements the [Surface] interface.
func (s *ImageSurface) Width() int {
	return s.Img.Bounds().Dx()
}

// Height implements the [Surface] interface.
func (s *ImageSurface) Height() int {
	return s.Img.Bounds().Dy()
}

// SetPixel implements the [Surface] interface.
func (s *ImageSurface) SetPixel(x, y int, c color.Color) {
	b := s.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	s.Img.Set(b.Min.X+x, b.Min.Y+y, c)
}

// SavePNG writes the image to the named file in PNG format.
func (s *ImageSurface) SavePNG(fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, s.Img)
}

// ParseColor converts a colour name to an opaque RGBA value.
// Names are the SVG 1.1 colour keywords, for example "white" or
// "cornflowerblue", compared case-insensitively.  Hexadecimal notation
// "#rgb" and "#rrggbb" is also accepted.
func ParseColor(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}

	hex, isHex := strings.CutPrefix(key, "#")
	if isHex {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
			}
		}
	}
	return color.RGBA{}, fmt.Errorf("%w: unknown colour %q", ErrInvalidArgument, name)
}
