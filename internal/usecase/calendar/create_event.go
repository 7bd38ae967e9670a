package calendar

import (
	"context"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

type eventCreatorSrv struct {
	events port.EventRepository
	medias port.MediaRepository
	genID  port.UUIDGen
	now    port.Clock
}

// compile-time check: *eventCreatorSrv must satisfy port.EventCreator
var _ port.EventCreator = (*eventCreatorSrv)(nil)

// NewEventCreator constructs an EventCreator implementation.
func NewEventCreator(events port.EventRepository, medias port.MediaRepository, genID port.UUIDGen, now port.Clock) port.EventCreator {
	return &eventCreatorSrv{events: events, medias: medias, genID: genID, now: now}
}

func (s *eventCreatorSrv) CreateEvent(ctx context.Context, in port.CreateEventInput) (*port.EventOutput, error) {
	if in.Date == nil {
		return nil, apperror.InvalidFields(map[string]string{"date": "required"})
	}

	now := s.now().UTC()
	e := &model.Event{
		ID:          s.genID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date.Time(),
		Time:        in.Time,
		Location:    in.Location,
		Type:        orDefault(in.Type, model.EventTypePersonal),
		Status:      orDefault(in.Status, model.EventStatusUpcoming),
		Priority:    orDefault(in.Priority, model.PriorityMedium),
		Color:       orDefault(in.Color, model.DefaultEventColor),
		MediaIDs:    model.MediaIDs(in.Media),
		IsPublic:    in.IsPublic,
		Reminders:   in.Reminders,
		Attendees:   withAttendeeDefaults(in.Attendees),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.EndDate != nil {
		end := in.EndDate.Time()
		e.EndDate = &end
	}
	fillEmpty(e)

	if err := checkEvent(e); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, e); err != nil {
		logger.Errorf(ctx, "failed to record event %q: %v", e.Title, err)
		return nil, apperror.Persistence(err)
	}

	return projectOne(ctx, s.medias, e)
}

func orDefault[T ~string](v, def T) T {
	if strings.TrimSpace(string(v)) == "" {
		return def
	}
	return v
}

func withAttendeeDefaults(in model.Attendees) model.Attendees {
	for i := range in {
		if in[i].Status == "" {
			in[i].Status = model.AttendeeInvited
		}
	}
	return in
}

// fillEmpty replaces nil collections so they serialise as [].
func fillEmpty(e *model.Event) {
	if e.MediaIDs == nil {
		e.MediaIDs = model.MediaIDs{}
	}
	if e.Reminders == nil {
		e.Reminders = model.Reminders{}
	}
	if e.Attendees == nil {
		e.Attendees = model.Attendees{}
	}
}

// checkEvent runs the struct rules and the cross-field ones.
func checkEvent(e *model.Event) error {
	if err := validation.Check(e); err != nil {
		return err
	}
	if e.EndDate != nil && e.EndDate.Before(e.Date) {
		return apperror.InvalidFields(map[string]string{"endDate": "gtefield=date"})
	}
	return nil
}
