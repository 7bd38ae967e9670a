package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

var (
	mockID  = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	fixedAt = time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC)
)

func fixedID() uuid.UUID  { return mockID }
func fixedNow() time.Time { return fixedAt }

func pngData(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// mp4Data is the smallest prefix recognised as an MP4 container.
func mp4Data() []byte {
	return []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom\x00\x00\x00\x08free")
}

func activePhoto() *model.Media {
	return &model.Media{
		ID:         mockID,
		Title:      "Sunset",
		Kind:       model.KindPhoto,
		Category:   model.CategoryPortrait,
		URL:        "https://cdn.test/portfolio/photos/a.png",
		Thumbnail:  "https://cdn.test/portfolio/photos/a.png",
		ExternalID: "portfolio/photos/a.png",
		SizeBytes:  1024,
		Tags:       model.Tags{"sun"},
		IsActive:   true,
		UploadDate: fixedAt,
	}
}
