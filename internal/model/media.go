package model

import (
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type Kind string

const (
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
)

// KindFromMimeType infers the media kind: video/* is a video, anything else a photo.
func KindFromMimeType(mimeType string) Kind {
	if strings.HasPrefix(strings.ToLower(mimeType), "video/") {
		return KindVideo
	}
	return KindPhoto
}

// Folder is the store namespace for the kind.
func (k Kind) Folder() string {
	if k == KindVideo {
		return "portfolio/videos"
	}
	return "portfolio/photos"
}

type Category string

const (
	CategoryPortrait  Category = "Portrait"
	CategoryLifestyle Category = "Lifestyle"
	CategoryFashion   Category = "Fashion"
	CategoryStyle     Category = "Style"
	CategoryMoments   Category = "Moments"
	CategoryBeauty    Category = "Beauty"
	CategoryElegance  Category = "Elegance"
	CategoryGrace     Category = "Grace"
	CategoryLiving    Category = "Living"
	CategoryEvents    Category = "Events"
)

const (
	MediaTitleMaxLen       = 100
	MediaDescriptionMaxLen = 500
)

type Media struct {
	ID                  uuid.UUID     `json:"id"`
	Title               string        `json:"title" validate:"notblank,max=100"`
	Description         string        `json:"description" validate:"max=500"`
	Kind                Kind          `json:"type" validate:"required,oneof=photo video"`
	Category            Category      `json:"category" validate:"required,oneof=Portrait Lifestyle Fashion Style Moments Beauty Elegance Grace Living Events"`
	URL                 string        `json:"url" validate:"required"`
	Thumbnail           string        `json:"thumbnail" validate:"required_if=Kind video"`
	ExternalID          string        `json:"externalId" validate:"required"`
	ThumbnailExternalID string        `json:"-"`
	SizeBytes           int64         `json:"size" validate:"gt=0"`
	Dimensions          *Dimensions   `json:"dimensions,omitempty"`
	Tags                Tags          `json:"tags"`
	IsFeatured          bool          `json:"isFeatured"`
	IsActive            bool          `json:"isActive"`
	UploadDate          time.Time     `json:"uploadDate"`
	Metadata            MediaMetadata `json:"metadata"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// MediaRef is the projection of a media embedded into calendar events.
type MediaRef struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail"`
	Title     string    `json:"title"`
	Kind      Kind      `json:"type"`
}

// Ref projects the media for embedding.
func (m *Media) Ref() MediaRef {
	return MediaRef{ID: m.ID, URL: m.URL, Thumbnail: m.Thumbnail, Title: m.Title, Kind: m.Kind}
}
