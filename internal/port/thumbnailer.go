package port

import "io"

// Thumbnailer turns an image into a small WebP preview.
type Thumbnailer interface {
	Thumbnail(r io.Reader) ([]byte, error)
}
