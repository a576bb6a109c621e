// Package render rasterizes labeled grids into images.
//
// Each grid cell becomes a Scale x Scale block of pixels in its seed's
// palette color; unassigned cells are black.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/palette"
)

// DefaultScale is the side length in pixels of one grid cell.
const DefaultScale = 16

// MaxPixels bounds the pixel count of a rendered image.
const MaxPixels = 1 << 28

var (
	// ErrPaletteTooSmall is returned when a cell id has no palette entry.
	ErrPaletteTooSmall = errors.New("render: palette too small")

	// ErrImageTooLarge is returned when the scaled image exceeds MaxPixels.
	ErrImageTooLarge = errors.New("render: image too large")
)

// Image renders labels with one scale x scale block per cell.
// A scale below 1 is treated as 1.
func Image(labels voronoi.Labels, colors []color.RGBA, scale int) (*image.RGBA, error) {
	scale = max(scale, 1)
	if err := checkSize(labels.Size(), scale); err != nil {
		return nil, err
	}

	src, err := cells(labels, colors)
	if err != nil {
		return nil, err
	}
	if scale == 1 {
		return src, nil
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// checkSize rejects images whose pixel count would exceed MaxPixels.
// Each factor is checked by division so the product cannot overflow.
func checkSize(size voronoi.Point, scale int) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", size.X, size.Y)
	}
	limit := MaxPixels / scale / scale
	if scale > MaxPixels/scale || size.X > limit || size.Y > limit/size.X {
		return fmt.Errorf("%w: %dx%d cells at scale %d exceeds %d pixels",
			ErrImageTooLarge, size.X, size.Y, scale, MaxPixels)
	}
	return nil
}

// cells renders labels at one pixel per cell.
func cells(labels voronoi.Labels, colors []color.RGBA) (*image.RGBA, error) {
	size := labels.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))

	for y := range size.Y {
		row := img.Pix[y*img.Stride:]
		for x := range size.X {
			id := labels.IDAt(x, y)
			c, ok := palette.Lookup(colors, id)
			if !ok {
				return nil, fmt.Errorf("%w: id %d at (%d,%d), %d colors", ErrPaletteTooSmall, id, x, y, len(colors))
			}
			off := x * 4
			row[off+0] = c.R
			row[off+1] = c.G
			row[off+2] = c.B
			row[off+3] = c.A
		}
	}
	return img, nil
}
