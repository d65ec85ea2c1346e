package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/ytget/image-converter/internal/model"
)

// Fixed encoder qualities; these match the defaults browsers use for
// canvas.toDataURL and are not user configurable.
const (
	JPEGQuality = 92
	WEBPQuality = 80
)

// ErrUnsupportedFormat is returned when no encoder exists for a target format
var ErrUnsupportedFormat = errors.New("unsupported target format")

// Encoder encodes an image into one target format
type Encoder interface {
	// Format returns the target format produced by the encoder
	Format() model.Format

	// Encode writes img to w
	Encode(w io.Writer, img image.Image) error
}

type pngEncoder struct{}

func (pngEncoder) Format() model.Format { return model.FormatPNG }

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

type jpegEncoder struct {
	quality int
}

func (jpegEncoder) Format() model.Format { return model.FormatJPEG }

func (e jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(e.quality))
}

type webpEncoder struct {
	quality float32
}

func (webpEncoder) Format() model.Format { return model.FormatWEBP }

func (e webpEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Quality: e.quality})
}

var encoders = map[model.Format]Encoder{
	model.FormatPNG:  pngEncoder{},
	model.FormatJPEG: jpegEncoder{quality: JPEGQuality},
	model.FormatWEBP: webpEncoder{quality: WEBPQuality},
}

// EncoderFor returns the encoder registered for f
func EncoderFor(f model.Format) (Encoder, error) {
	enc, ok := encoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return enc, nil
}

// Encode encodes img into f and returns the bytes
func Encode(img image.Image, f model.Format) ([]byte, error) {
	enc, err := EncoderFor(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", f, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("encoding %s: encoder produced no data", f)
	}
	return buf.Bytes(), nil
}
