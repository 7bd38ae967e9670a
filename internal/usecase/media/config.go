package media

import (
	"mime"
	"strings"
)

const MaxFileSize = 50 << 20 // 50 MiB

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

var AllowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
}

var AllowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/x-msvideo": true,
}

func IsExtensionAllowed(ext string) bool {
	return AllowedExtensions[strings.ToLower(ext)]
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[normaliseMimeType(mimeType)]
}

func IsImage(mimeType string) bool {
	return family(mimeType) == "image"
}

// normaliseMimeType lower-cases a content type and drops its parameters.
func normaliseMimeType(mimeType string) string {
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// family is the top-level type, e.g. "image" for image/png.
func family(mimeType string) string {
	return strings.SplitN(normaliseMimeType(mimeType), "/", 2)[0]
}
