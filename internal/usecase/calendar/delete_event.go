package calendar

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type eventDeleterSrv struct {
	events port.EventRepository
	cache  port.Cache
}

// compile-time check: *eventDeleterSrv must satisfy port.EventDeleter
var _ port.EventDeleter = (*eventDeleterSrv)(nil)

// NewEventDeleter constructs an EventDeleter implementation.
func NewEventDeleter(events port.EventRepository, cache port.Cache) port.EventDeleter {
	return &eventDeleterSrv{events: events, cache: cache}
}

// DeleteEvent removes the event for good and drops its cached rendering.
func (s *eventDeleterSrv) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return lookupErr(err)
	}

	if err := s.cache.DeleteDetails(ctx, port.ResourceEvent, id); err != nil {
		logger.Warnf(ctx, "failed deleting cache for event #%s: %v", id, err)
	}
	return nil
}
