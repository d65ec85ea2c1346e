package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a target format identifier is not supported.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is the target encoding of a conversion
type Format string

const (
	// FormatPNG encodes losslessly
	FormatPNG Format = "png"

	// FormatJPEG encodes lossy at the fixed default quality
	FormatJPEG Format = "jpeg"

	// FormatWEBP encodes lossy at the fixed default quality
	FormatWEBP Format = "webp"
)

// DefaultFormat is the format selected before the user picks one
const DefaultFormat = FormatPNG

// MediaTypePrefix is the declared media type prefix every accepted source must carry
const MediaTypePrefix = "image/"

// Formats returns the supported formats in selector order
func Formats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatWEBP}
}

// ParseFormat converts a user supplied identifier into a Format.
// Identifiers are matched case-insensitively and "jpg" is accepted for JPEG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWEBP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns the lowercase identifier of the format
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is one of the supported formats
func (f Format) IsValid() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatWEBP:
		return true
	}
	return false
}

// Extension returns the conventional file extension without a dot.
// It is the lowercase identifier itself, so JPEG yields "jpeg".
func (f Format) Extension() string {
	return string(f)
}

// MIMEType returns the media type produced by encoding to f
func (f Format) MIMEType() string {
	return MediaTypePrefix + string(f)
}

// Label returns the display label used by the format selector
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

// FormatFromLabel maps a selector label back to its Format
func FormatFromLabel(label string) (Format, error) {
	for _, f := range Formats() {
		if f.Label() == label {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: label %q", ErrUnknownFormat, label)
}
