package port

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MediaFilter narrows a media listing. Zero values mean "no filter".
type MediaFilter struct {
	Kind         model.Kind
	Category     model.Category
	FeaturedOnly bool
	Search       string
	Offset       int
	Limit        int
}

// MediaRepository defines persistence operations for medias.
// GetByID returns sql.ErrNoRows when the record does not exist.
// Update only writes the client-editable fields; is_active and the generated
// thumbnail change through Deactivate and SetThumbnail.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	Update(ctx context.Context, media *model.Media) error
	SetThumbnail(ctx context.Context, id uuid.UUID, url, externalID string) (bool, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
	List(ctx context.Context, f MediaFilter) ([]*model.Media, int, error)
	GetRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.MediaRef, error)
	ListPhotosWithoutThumbnailBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}

// EventFilter narrows an event listing. Zero values mean "no filter".
type EventFilter struct {
	PublicOnly bool
	From       *time.Time
	To         *time.Time
	Type       model.EventType
	Statuses   []model.EventStatus
	Limit      int
}

// EventRepository defines persistence operations for calendar events.
// GetByID and Delete return sql.ErrNoRows when the record does not exist.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f EventFilter) ([]*model.Event, error)
}
