package codec

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Surface limits mirror the largest canvas common browsers will allocate
const (
	MaxSurfaceSide = 32767
	MaxSurfaceArea = 268435456
)

var (
	// ErrEmptyImage is returned for images with zero width or height
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrSurfaceTooLarge is returned when a surface exceeds the allocation limits
	ErrSurfaceTooLarge = errors.New("surface too large")
)

// NewSurface allocates a transparent RGBA surface of exactly width x height
func NewSurface(width, height int) (*image.RGBA, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// CheckSize reports whether a width x height surface can be allocated
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if width > MaxSurfaceSide || height > MaxSurfaceSide || int64(width)*int64(height) > MaxSurfaceArea {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceTooLarge, width, height)
	}
	return nil
}

// SurfaceFor allocates a surface matching the intrinsic size of img
func SurfaceFor(img image.Image) (*image.RGBA, error) {
	b := img.Bounds()
	return NewSurface(b.Dx(), b.Dy())
}

// Draw copies src onto dst at the origin without scaling or cropping,
// compositing source-over like a canvas drawImage call.
func Draw(dst draw.Image, src image.Image) {
	draw.Copy(dst, image.Point{}, src, src.Bounds(), draw.Over, nil)
}
