package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	_ "golang.org/x/image/webp"
)

const (
	DefaultWidth = 480
	Quality      = 80
)

type Generator struct {
	width int
}

// compile-time check: *Generator must satisfy port.Thumbnailer
var _ port.Thumbnailer = (*Generator)(nil)

func NewGenerator(width int) *Generator {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Generator{width: width}
}

// Thumbnail decodes a JPEG, PNG, GIF or WebP image, scales it down to the
// generator width keeping the aspect ratio and encodes it as lossy WebP.
// Images narrower than the width are not upscaled.
func (g *Generator) Thumbnail(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > g.width {
		img = imaging.Resize(img, g.width, 0, imaging.Lanczos)
	}

	buf := &bytes.Buffer{}
	if err := webp.Encode(buf, img, &webp.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("thumbnail: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}
