package platform

import (
	"mime"
	"path/filepath"
	"strings"
)

// DefaultMediaType is declared for files whose extension maps to nothing
const DefaultMediaType = "application/octet-stream"

// knownMediaTypes covers image extensions some system mime tables lack
var knownMediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".avif": "image/avif",
}

// ImageExtensions lists the extensions offered by file pickers
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff"}

// MediaTypeOf declares a media type for path from its extension alone,
// the way a browser file input does. Parameters such as charset are dropped.
func MediaTypeOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return DefaultMediaType
	}
	if t, ok := knownMediaTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return DefaultMediaType
	}
	if i := strings.Index(t, ";"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
