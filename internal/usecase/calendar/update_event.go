package calendar

import (
	"context"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type eventUpdaterSrv struct {
	events port.EventRepository
	medias port.MediaRepository
	cache  port.Cache
	now    port.Clock
}

// compile-time check: *eventUpdaterSrv must satisfy port.EventUpdater
var _ port.EventUpdater = (*eventUpdaterSrv)(nil)

// NewEventUpdater constructs an EventUpdater implementation.
func NewEventUpdater(events port.EventRepository, medias port.MediaRepository, cache port.Cache, now port.Clock) port.EventUpdater {
	return &eventUpdaterSrv{events: events, medias: medias, cache: cache, now: now}
}

// UpdateEvent replaces every field present in the patch. A null clears the
// optional fields and empties the lists; it is rejected for required ones.
func (s *eventUpdaterSrv) UpdateEvent(ctx context.Context, id uuid.UUID, patch port.EventPatch) (*port.EventOutput, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}

	if nulls := requiredNulls(patch); len(nulls) > 0 {
		return nil, apperror.InvalidFields(nulls)
	}

	if v, ok := patch.Title.Get(); ok {
		e.Title = strings.TrimSpace(v)
	}
	if patch.Description.Set {
		e.Description = strings.TrimSpace(patch.Description.Value)
	}
	if v, ok := patch.Date.Get(); ok {
		e.Date = v.Time()
	}
	if patch.EndDate.Set {
		e.EndDate = nil
		if v, ok := patch.EndDate.Get(); ok {
			end := v.Time()
			e.EndDate = &end
		}
	}
	if patch.Time.Set {
		e.Time = nil
		if v, ok := patch.Time.Get(); ok {
			e.Time = &v
		}
	}
	if patch.Location.Set {
		e.Location = nil
		if v, ok := patch.Location.Get(); ok {
			e.Location = &v
		}
	}
	if v, ok := patch.Type.Get(); ok {
		e.Type = v
	}
	if v, ok := patch.Status.Get(); ok {
		e.Status = v
	}
	if v, ok := patch.Priority.Get(); ok {
		e.Priority = v
	}
	if v, ok := patch.Color.Get(); ok {
		e.Color = v
	}
	if patch.Media.Set {
		e.MediaIDs = model.MediaIDs(patch.Media.Value)
	}
	if v, ok := patch.IsPublic.Get(); ok {
		e.IsPublic = v
	}
	if patch.Reminders.Set {
		e.Reminders = patch.Reminders.Value
	}
	if patch.Attendees.Set {
		e.Attendees = withAttendeeDefaults(patch.Attendees.Value)
	}
	fillEmpty(e)

	if err := checkEvent(e); err != nil {
		return nil, err
	}

	e.UpdatedAt = s.now().UTC()
	if err := s.events.Update(ctx, e); err != nil {
		return nil, apperror.Persistence(err)
	}

	if err := s.cache.DeleteDetails(ctx, port.ResourceEvent, e.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for event #%s: %v", e.ID, err)
	}

	return projectOne(ctx, s.medias, e)
}

func requiredNulls(p port.EventPatch) map[string]string {
	nulls := map[string]string{}
	for field, null := range map[string]bool{
		"title":    p.Title.Null,
		"date":     p.Date.Null,
		"type":     p.Type.Null,
		"status":   p.Status.Null,
		"priority": p.Priority.Null,
		"color":    p.Color.Null,
		"isPublic": p.IsPublic.Null,
	} {
		if null {
			nulls[field] = "required"
		}
	}
	return nulls
}
