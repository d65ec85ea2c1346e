package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/model"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestConvertFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, in, 30, 20)
	outDir := filepath.Join(t.TempDir(), "out")

	var notices bytes.Buffer
	report, err := convertFile(context.Background(), convertOptions{
		Input:     in,
		Format:    model.FormatWEBP,
		OutputDir: outDir,
	}, &notices)
	require.NoError(t, err)

	assert.Equal(t, in, report.Source)
	assert.Equal(t, "webp", report.Format)
	assert.Equal(t, "image/webp", report.MIMEType)
	assert.Equal(t, 30, report.Width)
	assert.Equal(t, 20, report.Height)
	assert.Equal(t, filepath.Join(outDir, "converted-image.webp"), report.Output)
	assert.Contains(t, notices.String(), "Success!: Image converted successfully")

	data, err := os.ReadFile(report.Output)
	require.NoError(t, err)
	assert.Equal(t, report.Bytes, len(data))
	assert.Empty(t, report.DataURI)
}

func TestConvertFile_EmbedsDataURI(t *testing.T) {
	in := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, in, 5, 7)
	outDir := t.TempDir()

	report, err := convertFile(context.Background(), convertOptions{
		Input:     in,
		Format:    model.FormatPNG,
		OutputDir: outDir,
		Embed:     true,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(report.DataURI, prefix))
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(report.DataURI, prefix))
	require.NoError(t, err)

	saved, err := os.ReadFile(report.Output)
	require.NoError(t, err)
	assert.Equal(t, saved, payload)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, ReportYAML, report))
	assert.Contains(t, buf.String(), "data_uri: "+prefix)
}

func TestConvertFile_DoesNotOverwrite(t *testing.T) {
	in := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, in, 4, 4)
	outDir := t.TempDir()
	opts := convertOptions{Input: in, Format: model.FormatJPEG, OutputDir: outDir}

	first, err := convertFile(context.Background(), opts, &bytes.Buffer{})
	require.NoError(t, err)
	second, err := convertFile(context.Background(), opts, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "converted-image.jpeg"), first.Output)
	assert.Equal(t, filepath.Join(outDir, "converted-image (1).jpeg"), second.Output)
}

func TestConvertFile_Errors(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0644))
	var notices bytes.Buffer
	_, err := convertFile(context.Background(), convertOptions{Input: txt, Format: model.FormatPNG, OutputDir: dir}, &notices)
	assert.ErrorIs(t, err, convert.ErrInvalidFileType)
	assert.Contains(t, notices.String(), "Invalid file type")

	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("not a png"), 0644))
	notices.Reset()
	_, err = convertFile(context.Background(), convertOptions{Input: broken, Format: model.FormatPNG, OutputDir: dir}, &notices)
	assert.ErrorIs(t, err, convert.ErrConversionFailed)
	assert.Contains(t, notices.String(), "Failed to convert image")

	_, err = convertFile(context.Background(), convertOptions{Input: filepath.Join(dir, "missing.png"), Format: model.FormatPNG, OutputDir: dir}, &notices)
	assert.Error(t, err)
}

func TestConvertFile_Timeout(t *testing.T) {
	in := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, in, 4, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := convertFile(ctx, convertOptions{Input: in, Format: model.FormatPNG, OutputDir: t.TempDir(), Timeout: time.Second}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteReport(t *testing.T) {
	report := conversionReport{
		Source:   "in.png",
		ResultID: "result-1",
		Format:   "png",
		MIMEType: "image/png",
		Width:    3,
		Height:   2,
		Bytes:    70,
		Output:   "/tmp/converted-image.png",
		Elapsed:  "1ms",
	}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, ReportYAML, report))
	var fromYAML conversionReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, report, fromYAML)
	assert.Contains(t, buf.String(), "mime_type: image/png")
	assert.NotContains(t, buf.String(), "data_uri")

	buf.Reset()
	require.NoError(t, writeReport(&buf, ReportJSON, report))
	var fromJSON conversionReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, report, fromJSON)

	buf.Reset()
	require.NoError(t, writeReport(&buf, ReportNone, report))
	assert.Empty(t, buf.String())

	assert.Error(t, writeReport(&buf, "xml", report))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "image-converter dev\n", out.String())
}
