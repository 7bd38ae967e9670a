package calendar

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type eventGetterSrv struct {
	events port.EventRepository
	medias port.MediaRepository
}

// compile-time check: *eventGetterSrv must satisfy port.EventGetter
var _ port.EventGetter = (*eventGetterSrv)(nil)

// NewEventGetter constructs an EventGetter implementation.
func NewEventGetter(events port.EventRepository, medias port.MediaRepository) port.EventGetter {
	return &eventGetterSrv{events: events, medias: medias}
}

func (s *eventGetterSrv) GetEvent(ctx context.Context, id uuid.UUID) (*port.EventOutput, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	return projectOne(ctx, s.medias, e)
}
