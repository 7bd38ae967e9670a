package port

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

type Clock func() time.Time

// --- media catalog ---

// UploadedFile is a file received from a client, fully buffered.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaUploader stores a new file in the object store and records it.
type MediaUploader interface {
	UploadMedia(ctx context.Context, in UploadMediaInput) (*model.Media, error)
}
type UploadMediaInput struct {
	File        *UploadedFile
	Poster      *UploadedFile
	Title       string
	Description string
	Category    model.Category
	Tags        string
	Metadata    string
}

// MediaLister returns a page of active medias.
type MediaLister interface {
	ListMedia(ctx context.Context, in ListMediaInput) (*ListMediaOutput, error)
}
type ListMediaInput struct {
	Page         int
	Limit        int
	Kind         model.Kind
	Category     model.Category
	FeaturedOnly bool
	Search       string
}
type ListMediaOutput struct {
	Media       []*model.Media `json:"media"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int            `json:"total"`
}

// MediaGetter retrieves one media, whether active or not.
type MediaGetter interface {
	GetMedia(ctx context.Context, id uuid.UUID) (*model.Media, error)
}

// MediaUpdater applies a partial update to a media.
type MediaUpdater interface {
	UpdateMedia(ctx context.Context, id uuid.UUID, patch MediaPatch) (*model.Media, error)
}
type MediaPatch struct {
	Title       model.Optional[string]              `json:"title,omitzero"`
	Description model.Optional[string]              `json:"description,omitzero"`
	Category    model.Optional[model.Category]      `json:"category,omitzero"`
	Tags        model.Optional[model.Tags]          `json:"tags,omitzero"`
	IsFeatured  model.Optional[bool]                `json:"isFeatured,omitzero"`
	Metadata    model.Optional[model.MediaMetadata] `json:"metadata,omitzero"`
}

// MediaDeleter removes the stored file and deactivates the media.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// ThumbnailGenerator renders and stores the preview of a photo.
type ThumbnailGenerator interface {
	GenerateThumbnail(ctx context.Context, id uuid.UUID) error
}

// ThumbnailBacklog enqueues thumbnail generation for photos that never got one.
type ThumbnailBacklog interface {
	EnqueueThumbnailBacklog(ctx context.Context) error
}

// --- event calendar ---

// EventOutput is an event with its media references resolved.
type EventOutput struct {
	*model.Event
	Media []model.MediaRef `json:"media"`
}

// EventLister returns public events matching the filters, by date ascending.
type EventLister interface {
	ListEvents(ctx context.Context, in ListEventsInput) ([]*EventOutput, error)
}
type ListEventsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Month     int
	Year      int
	Type      model.EventType
	Status    model.EventStatus
}

// UpcomingEventLister returns the next public events from today on.
type UpcomingEventLister interface {
	ListUpcomingEvents(ctx context.Context, limit int) ([]*EventOutput, error)
}

// EventGetter retrieves one event.
type EventGetter interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*EventOutput, error)
}

// EventCreator records a new event, filling defaults.
type EventCreator interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*EventOutput, error)
}
type CreateEventInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        *model.FlexTime   `json:"date"`
	EndDate     *model.FlexTime   `json:"endDate"`
	Time        *model.TimeWindow `json:"time"`
	Location    *model.Location   `json:"location"`
	Type        model.EventType   `json:"type"`
	Status      model.EventStatus `json:"status"`
	Priority    model.Priority    `json:"priority"`
	Color       string            `json:"color"`
	Media       []uuid.UUID       `json:"media"`
	IsPublic    bool              `json:"isPublic"`
	Reminders   model.Reminders   `json:"reminders"`
	Attendees   model.Attendees   `json:"attendees"`
}

// EventUpdater applies a partial update to an event.
type EventUpdater interface {
	UpdateEvent(ctx context.Context, id uuid.UUID, patch EventPatch) (*EventOutput, error)
}
type EventPatch struct {
	Title       model.Optional[string]            `json:"title,omitzero"`
	Description model.Optional[string]            `json:"description,omitzero"`
	Date        model.Optional[model.FlexTime]    `json:"date,omitzero"`
	EndDate     model.Optional[model.FlexTime]    `json:"endDate,omitzero"`
	Time        model.Optional[model.TimeWindow]  `json:"time,omitzero"`
	Location    model.Optional[model.Location]    `json:"location,omitzero"`
	Type        model.Optional[model.EventType]   `json:"type,omitzero"`
	Status      model.Optional[model.EventStatus] `json:"status,omitzero"`
	Priority    model.Optional[model.Priority]    `json:"priority,omitzero"`
	Color       model.Optional[string]            `json:"color,omitzero"`
	Media       model.Optional[[]uuid.UUID]       `json:"media,omitzero"`
	IsPublic    model.Optional[bool]              `json:"isPublic,omitzero"`
	Reminders   model.Optional[model.Reminders]   `json:"reminders,omitzero"`
	Attendees   model.Optional[model.Attendees]   `json:"attendees,omitzero"`
}

// EventDeleter physically removes an event.
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}
