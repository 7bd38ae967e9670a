package calendar

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

const (
	DefaultUpcomingLimit = 5
	MaxUpcomingLimit     = 100
)

type upcomingEventListerSrv struct {
	events port.EventRepository
	medias port.MediaRepository
	now    port.Clock
}

// compile-time check: *upcomingEventListerSrv must satisfy port.UpcomingEventLister
var _ port.UpcomingEventLister = (*upcomingEventListerSrv)(nil)

// NewUpcomingEventLister constructs an UpcomingEventLister implementation.
func NewUpcomingEventLister(events port.EventRepository, medias port.MediaRepository, now port.Clock) port.UpcomingEventLister {
	return &upcomingEventListerSrv{events: events, medias: medias, now: now}
}

// ListUpcomingEvents returns public events still to come or under way, starting today.
func (s *upcomingEventListerSrv) ListUpcomingEvents(ctx context.Context, limit int) ([]*port.EventOutput, error) {
	if limit < 1 {
		limit = DefaultUpcomingLimit
	}
	if limit > MaxUpcomingLimit {
		limit = MaxUpcomingLimit
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	events, err := s.events.List(ctx, port.EventFilter{
		PublicOnly: true,
		From:       &today,
		Statuses:   []model.EventStatus{model.EventStatusUpcoming, model.EventStatusOngoing},
		Limit:      limit,
	})
	if err != nil {
		logger.Errorf(ctx, "failed to list upcoming events: %v", err)
		return nil, apperror.Persistence(err)
	}
	return project(ctx, s.medias, events)
}
