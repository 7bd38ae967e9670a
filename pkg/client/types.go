package client

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// ID identifies a media or an event.
type ID = uuid.UUID

func ParseID(s string) (ID, error) { return uuid.Parse(s) }

// Wire types shared with the server.
type (
	Media         = model.Media
	MediaMetadata = model.MediaMetadata
	MediaRef      = model.MediaRef
	MediaPage     = port.ListMediaOutput
	MediaPatch    = port.MediaPatch
	Event         = port.EventOutput
	NewEvent      = port.CreateEventInput
	EventPatch    = port.EventPatch

	Kind        = model.Kind
	Category    = model.Category
	Tags        = model.Tags
	EventType   = model.EventType
	EventStatus = model.EventStatus
	Priority    = model.Priority
	FlexTime    = model.FlexTime
	TimeWindow  = model.TimeWindow
	Location    = model.Location
	Reminder    = model.Reminder
	Attendee    = model.Attendee
)

// Optional is a patch field: absent, null or set.
type Optional[T any] = model.Optional[T]

func Some[T any](v T) Optional[T] { return model.Some(v) }

func Null[T any]() Optional[T] { return model.Null[T]() }

type ListMediaParams struct {
	Page     int
	Limit    int
	Type     Kind
	Category Category
	Featured bool
	Search   string
}

type ListEventsParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	Month     int
	Year      int
	Type      EventType
	Status    EventStatus
}

// FilePart is a file sent in a multipart upload.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadMediaParams struct {
	File        FilePart
	Thumbnail   *FilePart
	Title       string
	Description string
	Category    Category
	Tags        []string
	Metadata    *MediaMetadata
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type mediaEnvelope struct {
	Message string `json:"message"`
	Media   *Media `json:"media"`
}

type eventEnvelope struct {
	Message string `json:"message"`
	Event   *Event `json:"event"`
}
