package calendar

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

type eventListerSrv struct {
	events port.EventRepository
	medias port.MediaRepository
}

// compile-time check: *eventListerSrv must satisfy port.EventLister
var _ port.EventLister = (*eventListerSrv)(nil)

// NewEventLister constructs an EventLister implementation.
func NewEventLister(events port.EventRepository, medias port.MediaRepository) port.EventLister {
	return &eventListerSrv{events: events, medias: medias}
}

type eventFilters struct {
	Type   model.EventType   `json:"type" validate:"omitempty,oneof=personal professional social travel celebration other"`
	Status model.EventStatus `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

// ListEvents returns public events. An explicit start and end date win over a
// month and year; with neither, every public event is returned.
func (s *eventListerSrv) ListEvents(ctx context.Context, in port.ListEventsInput) ([]*port.EventOutput, error) {
	if err := validation.Check(eventFilters{Type: in.Type, Status: in.Status}); err != nil {
		return nil, err
	}

	f := port.EventFilter{PublicOnly: true, Type: in.Type}
	if in.Status != "" {
		f.Statuses = []model.EventStatus{in.Status}
	}

	switch {
	case in.StartDate != nil && in.EndDate != nil:
		if in.EndDate.Before(*in.StartDate) {
			return nil, apperror.Validation("endDate must not precede startDate")
		}
		f.From, f.To = in.StartDate, in.EndDate
	case in.Month != 0 && in.Year != 0:
		from, to, err := MonthRange(in.Year, in.Month)
		if err != nil {
			return nil, err
		}
		f.From, f.To = &from, &to
	}

	events, err := s.events.List(ctx, f)
	if err != nil {
		logger.Errorf(ctx, "failed to list events: %v", err)
		return nil, apperror.Persistence(err)
	}
	return project(ctx, s.medias, events)
}

// MonthRange is the first instant and the last second of a month, in UTC.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, apperror.Validation("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return time.Time{}, time.Time{}, apperror.Validation("year must be a positive integer, got %d", year)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to, nil
}
