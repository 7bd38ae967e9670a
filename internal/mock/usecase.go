package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MediaUploader implements port.MediaUploader for tests.
type MediaUploader struct {
	Out    *model.Media
	Err    error
	Called bool
	Input  port.UploadMediaInput
}

func (m *MediaUploader) UploadMedia(ctx context.Context, in port.UploadMediaInput) (*model.Media, error) {
	m.Called = true
	m.Input = in
	return m.Out, m.Err
}

// MediaLister implements port.MediaLister for tests.
type MediaLister struct {
	Out    *port.ListMediaOutput
	Err    error
	Called bool
	Input  port.ListMediaInput
}

func (m *MediaLister) ListMedia(ctx context.Context, in port.ListMediaInput) (*port.ListMediaOutput, error) {
	m.Called = true
	m.Input = in
	return m.Out, m.Err
}

// MediaGetter implements port.MediaGetter for tests.
type MediaGetter struct {
	Out    *model.Media
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MediaGetter) GetMedia(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MediaUpdater implements port.MediaUpdater for tests.
type MediaUpdater struct {
	Out    *model.Media
	Err    error
	Called bool
	ID     uuid.UUID
	Patch  port.MediaPatch
}

func (m *MediaUpdater) UpdateMedia(ctx context.Context, id uuid.UUID, patch port.MediaPatch) (*model.Media, error) {
	m.Called = true
	m.ID = id
	m.Patch = patch
	return m.Out, m.Err
}

// MediaDeleter implements port.MediaDeleter for tests.
type MediaDeleter struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MediaDeleter) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// ThumbnailGenerator implements port.ThumbnailGenerator for tests.
type ThumbnailGenerator struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *ThumbnailGenerator) GenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// EventLister implements port.EventLister for tests.
type EventLister struct {
	Out    []*port.EventOutput
	Err    error
	Called bool
	Input  port.ListEventsInput
}

func (m *EventLister) ListEvents(ctx context.Context, in port.ListEventsInput) ([]*port.EventOutput, error) {
	m.Called = true
	m.Input = in
	return m.Out, m.Err
}

// UpcomingEventLister implements port.UpcomingEventLister for tests.
type UpcomingEventLister struct {
	Out    []*port.EventOutput
	Err    error
	Called bool
	Limit  int
}

func (m *UpcomingEventLister) ListUpcomingEvents(ctx context.Context, limit int) ([]*port.EventOutput, error) {
	m.Called = true
	m.Limit = limit
	return m.Out, m.Err
}

// EventGetter implements port.EventGetter for tests.
type EventGetter struct {
	Out    *port.EventOutput
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *EventGetter) GetEvent(ctx context.Context, id uuid.UUID) (*port.EventOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// EventCreator implements port.EventCreator for tests.
type EventCreator struct {
	Out    *port.EventOutput
	Err    error
	Called bool
	Input  port.CreateEventInput
}

func (m *EventCreator) CreateEvent(ctx context.Context, in port.CreateEventInput) (*port.EventOutput, error) {
	m.Called = true
	m.Input = in
	return m.Out, m.Err
}

// EventUpdater implements port.EventUpdater for tests.
type EventUpdater struct {
	Out    *port.EventOutput
	Err    error
	Called bool
	ID     uuid.UUID
	Patch  port.EventPatch
}

func (m *EventUpdater) UpdateEvent(ctx context.Context, id uuid.UUID, patch port.EventPatch) (*port.EventOutput, error) {
	m.Called = true
	m.ID = id
	m.Patch = patch
	return m.Out, m.Err
}

// EventDeleter implements port.EventDeleter for tests.
type EventDeleter struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *EventDeleter) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}
