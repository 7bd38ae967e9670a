package api

import (
	"net/http"
	"strconv"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/go-chi/chi/v5"
)

const eventNotFound = "Event not found"

type EventResponse struct {
	Message string            `json:"message"`
	Event   *port.EventOutput `json:"event"`
}

func ListEventsHandler(svc port.EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := listEventsInput(r)
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to fetch events")
			return
		}

		events, err := svc.ListEvents(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to fetch events")
			return
		}

		RespondJSON(w, http.StatusOK, events)
		logger.Infof(r.Context(), "✅  Returned %d events", len(events))
	}
}

func listEventsInput(r *http.Request) (port.ListEventsInput, error) {
	q := r.URL.Query()
	in := port.ListEventsInput{
		Type:   model.EventType(q.Get("type")),
		Status: model.EventStatus(q.Get("status")),
	}
	var err error
	if in.StartDate, err = optionalTime(q, "startDate"); err != nil {
		return in, err
	}
	if in.EndDate, err = optionalTime(q, "endDate"); err != nil {
		return in, err
	}
	if in.Month, err = positiveInt(q, "month"); err != nil {
		return in, err
	}
	if in.Year, err = positiveInt(q, "year"); err != nil {
		return in, err
	}
	return in, nil
}

func MonthlyEventsHandler(svc port.EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, errY := strconv.Atoi(chi.URLParam(r, "year"))
		month, errM := strconv.Atoi(chi.URLParam(r, "month"))
		if errY != nil || errM != nil || year < 1 {
			writeServiceError(w, r, apperror.Validation("year and month must be integers"), eventNotFound, "Failed to fetch monthly events")
			return
		}
		if month < 1 || month > 12 {
			writeServiceError(w, r, apperror.Validation("month must be between 1 and 12, got %d", month), eventNotFound, "Failed to fetch monthly events")
			return
		}

		events, err := svc.ListEvents(r.Context(), port.ListEventsInput{Year: year, Month: month})
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to fetch monthly events")
			return
		}

		RespondJSON(w, http.StatusOK, events)
		logger.Infof(r.Context(), "✅  Returned %d events for %04d-%02d", len(events), year, month)
	}
}

// UpcomingEventsHandler falls back to the default limit when the path value is not a number.
func UpcomingEventsHandler(svc port.UpcomingEventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(chi.URLParam(r, "limit"))

		events, err := svc.ListUpcomingEvents(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to fetch upcoming events")
			return
		}

		RespondJSON(w, http.StatusOK, events)
		logger.Infof(r.Context(), "✅  Returned %d upcoming events", len(events))
	}
}

func GetEventHandler(renderer port.HTTPRenderer, svc port.EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetEvent(r.Context(), svc, id)
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to fetch event")
			return
		}

		if respondCached(w, r, raw, etag) {
			logger.Infof(r.Context(), "✅  Returning cached event #%s", id)
			return
		}
		logger.Infof(r.Context(), "✅  Successfully returned details for event #%s", id)
	}
}

func CreateEventHandler(svc port.EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.CreateEventInput
		if err := decodeJSON(r, &in); err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to create event")
			return
		}

		out, err := svc.CreateEvent(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to create event")
			return
		}

		RespondJSON(w, http.StatusCreated, EventResponse{Message: "Event created successfully", Event: out})
		logger.Infof(r.Context(), "✅  Successfully created event #%s", out.ID)
	}
}

func UpdateEventHandler(svc port.EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var patch port.EventPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to update event")
			return
		}

		out, err := svc.UpdateEvent(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to update event")
			return
		}

		RespondJSON(w, http.StatusOK, EventResponse{Message: "Event updated successfully", Event: out})
		logger.Infof(r.Context(), "✅  Successfully updated event #%s", id)
	}
}

func DeleteEventHandler(svc port.EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteEvent(r.Context(), id); err != nil {
			writeServiceError(w, r, err, eventNotFound, "Failed to delete event")
			return
		}

		RespondJSON(w, http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
		logger.Infof(r.Context(), "✅  Successfully deleted event #%s", id)
	}
}
