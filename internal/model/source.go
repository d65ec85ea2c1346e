package model

import "strings"

// SourceFile is the image the user picked. The media type is the one declared
// by the host (file dialog or extension mapping); content is never sniffed.
type SourceFile struct {
	Name      string
	MediaType string
	Data      []byte
}

// IsImage reports whether the declared media type is an image type
func (f SourceFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.MediaType)), MediaTypePrefix)
}

// Size returns the number of bytes in the file
func (f SourceFile) Size() int {
	return len(f.Data)
}
