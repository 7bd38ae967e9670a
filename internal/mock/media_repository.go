package mock

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MediaRepo implements port.MediaRepository for tests.
type MediaRepo struct {
	// stored values
	MediaRecord *model.Media
	ListOut     []*model.Media
	ListTotal   int
	Refs        map[uuid.UUID]model.MediaRef
	BacklogOut  []uuid.UUID

	// captured inputs
	Created       *model.Media
	Updated       *model.Media
	GotFilter     port.MediaFilter
	GotRefIDs     []uuid.UUID
	BacklogBefore time.Time
	ThumbURL      string
	ThumbKey      string
	Deactivated   []uuid.UUID

	// errors
	GetErr     error
	CreateErr  error
	UpdateErr  error
	ListErr    error
	RefsErr    error
	BacklogErr error
	ThumbErr   error
	DeactErr   error

	// ThumbMissed makes SetThumbnail report that no active record changed.
	ThumbMissed bool

	// call flags
	GetCalled     bool
	ListCalled    bool
	RefsCalled    bool
	BacklogCalled bool
	ThumbCalled   bool
}

func (m *MediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.Created = media
	return m.CreateErr
}

func (m *MediaRepo) Update(ctx context.Context, media *model.Media) error {
	m.Updated = media
	return m.UpdateErr
}

func (m *MediaRepo) SetThumbnail(ctx context.Context, id uuid.UUID, url, externalID string) (bool, error) {
	m.ThumbCalled = true
	m.ThumbURL, m.ThumbKey = url, externalID
	if m.ThumbErr != nil {
		return false, m.ThumbErr
	}
	return !m.ThumbMissed, nil
}

func (m *MediaRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	m.Deactivated = append(m.Deactivated, id)
	return m.DeactErr
}

func (m *MediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaRecord, nil
}

func (m *MediaRepo) List(ctx context.Context, f port.MediaFilter) ([]*model.Media, int, error) {
	m.ListCalled = true
	m.GotFilter = f
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	return m.ListOut, m.ListTotal, nil
}

func (m *MediaRepo) GetRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.MediaRef, error) {
	m.RefsCalled = true
	m.GotRefIDs = ids
	if m.RefsErr != nil {
		return nil, m.RefsErr
	}
	if m.Refs == nil {
		return map[uuid.UUID]model.MediaRef{}, nil
	}
	return m.Refs, nil
}

func (m *MediaRepo) ListPhotosWithoutThumbnailBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	m.BacklogCalled = true
	m.BacklogBefore = before
	return m.BacklogOut, m.BacklogErr
}
