package codec

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-converter/internal/model"
)

func newTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: 128, A: 255})
		}
	}
	return img
}

func encodeFixture(t *testing.T, img image.Image, format string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "webp":
		err = webp.Encode(&buf, img, &webp.Options{Lossless: true})
	default:
		t.Fatalf("unknown fixture format %s", format)
	}
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecode_SourceFormats(t *testing.T) {
	for _, format := range []string{"png", "jpeg", "gif", "webp"} {
		t.Run(format, func(t *testing.T) {
			data := encodeFixture(t, newTestImage(100, 50), format)

			img, err := Decode(context.Background(), data)
			require.NoError(t, err)
			assert.Equal(t, 100, img.Bounds().Dx())
			assert.Equal(t, 50, img.Bounds().Dy())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Decode(context.Background(), []byte("definitely not an image"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decoding image")
}

// pngHeader returns a PNG that declares a w x h grayscale image but carries
// no pixel data. Only the header can be read from it.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth; color type, compression, filter and interlace stay 0

	chunk := append([]byte("IHDR"), ihdr...)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDecode_RejectsOversizedHeader(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{name: "side over limit", w: MaxSurfaceSide + 1, h: 1},
		{name: "area over limit", w: 17000, h: 17000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := pngHeader(tt.w, tt.h)
			require.Less(t, len(data), 64)

			info, err := Inspect(data)
			require.NoError(t, err)
			assert.Equal(t, int(tt.w), info.Width)

			_, err = Decode(context.Background(), data)
			assert.ErrorIs(t, err, ErrSurfaceTooLarge)
		})
	}
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(MaxSurfaceSide, 1))
	assert.NoError(t, CheckSize(16384, 16384))
	assert.ErrorIs(t, CheckSize(0, 5), ErrEmptyImage)
	assert.ErrorIs(t, CheckSize(MaxSurfaceSide+1, 1), ErrSurfaceTooLarge)
	assert.ErrorIs(t, CheckSize(17000, 17000), ErrSurfaceTooLarge)
}

func TestDecode_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Decode(ctx, encodeFixture(t, newTestImage(4, 4), "png"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{name: "exact size", w: 100, h: 50},
		{name: "single pixel", w: 1, h: 1},
		{name: "zero width", w: 0, h: 10, wantErr: ErrEmptyImage},
		{name: "negative height", w: 10, h: -1, wantErr: ErrEmptyImage},
		{name: "side over limit", w: MaxSurfaceSide + 1, h: 1, wantErr: ErrSurfaceTooLarge},
		{name: "area over limit", w: MaxSurfaceSide, h: MaxSurfaceSide, wantErr: ErrSurfaceTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.w, tt.h)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, tt.w, tt.h), s.Bounds())
		})
	}
}

func TestDraw_CopiesAtOrigin(t *testing.T) {
	src := newTestImage(10, 10)
	// A sub-image keeps its parent coordinates; drawing must still land at the origin.
	sub := src.SubImage(image.Rect(4, 4, 10, 10))

	surface, err := SurfaceFor(sub)
	require.NoError(t, err)
	assert.Equal(t, 6, surface.Bounds().Dx())

	Draw(surface, sub)

	want := color.RGBAModel.Convert(src.At(4, 4))
	assert.Equal(t, want, surface.At(0, 0))
	want = color.RGBAModel.Convert(src.At(9, 9))
	assert.Equal(t, want, surface.At(5, 5))
}

func TestEncode_RoundTripDimensions(t *testing.T) {
	tests := []struct {
		format     model.Format
		wantFormat string
	}{
		{model.FormatPNG, "png"},
		{model.FormatJPEG, "jpeg"},
		{model.FormatWEBP, "webp"},
	}

	src := newTestImage(37, 21)
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			surface, err := SurfaceFor(src)
			require.NoError(t, err)
			Draw(surface, src)

			data, err := Encode(surface, tt.format)
			require.NoError(t, err)

			info, err := Inspect(data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, info.Format)
			assert.Equal(t, 37, info.Width)
			assert.Equal(t, 21, info.Height)
		})
	}
}

func TestEncoderFor(t *testing.T) {
	for _, f := range model.Formats() {
		enc, err := EncoderFor(f)
		require.NoError(t, err)
		assert.Equal(t, f, enc.Format())
	}

	_, err := EncoderFor(model.Format("bmp"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Encode(newTestImage(2, 2), model.Format("avif"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestInspect_Errors(t *testing.T) {
	_, err := Inspect(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Inspect([]byte("plain text"))
	assert.Error(t, err)
}
