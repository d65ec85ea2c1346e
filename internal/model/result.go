package model

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ResultFileBaseName is the fixed base name of every saved result
	ResultFileBaseName = "converted-image"

	// ResultIDPrefix prefixes generated result IDs
	ResultIDPrefix = "result-"
)

// ConvertedResult is the encoded output of one conversion. Format is stamped
// at creation so the saved file name always matches the encoded bytes.
type ConvertedResult struct {
	ID         string
	SourceName string
	Format     Format
	Data       []byte
	Width      int
	Height     int
	CreatedAt  time.Time
}

// MIMEType returns the media type of the encoded bytes
func (r *ConvertedResult) MIMEType() string {
	return r.Format.MIMEType()
}

// DataURI returns the self-describing embeddable form of the result
func (r *ConvertedResult) DataURI() string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(r.MIMEType()) + base64.StdEncoding.EncodedLen(len(r.Data)))
	b.WriteString("data:")
	b.WriteString(r.MIMEType())
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(r.Data))
	return b.String()
}

// FileName returns the name the result is saved under
func (r *ConvertedResult) FileName() string {
	return FileNameFor(r.Format)
}

// Dimensions returns "WxH" for display
func (r *ConvertedResult) Dimensions() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// FileNameFor returns the saved file name for the given format
func FileNameFor(f Format) string {
	return ResultFileBaseName + "." + f.Extension()
}

// NewResultID generates a unique result ID using UUID v7 so IDs sort by creation time
func NewResultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ResultIDPrefix+"%d", time.Now().UnixNano())
	}
	return ResultIDPrefix + id.String()
}
