package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrEmptyInput is returned when there are no bytes to decode
var ErrEmptyInput = errors.New("empty image data")

// Info describes an encoded image without decoding its pixels
type Info struct {
	Format string
	Width  int
	Height int
}

// Decode decodes data into an image, applying EXIF orientation the way
// browsers do when drawing an image. The header is checked against the
// surface limits first, so oversized images fail before any pixels are
// allocated. Decoding runs on its own goroutine so the caller suspends until
// it settles or ctx is done.
func Decode(ctx context.Context, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if err := CheckSize(info.Width, info.Height); err != nil {
		return nil, err
	}

	type decoded struct {
		img image.Image
		err error
	}

	done := make(chan decoded, 1)
	go func() {
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		done <- decoded{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case d := <-done:
		if d.err != nil {
			return nil, fmt.Errorf("decoding image: %w", d.err)
		}
		return d.img, nil
	}
}

// Inspect reads the format name and dimensions of encoded image data
func Inspect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmptyInput
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("reading image header: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
