package model

import (
	"database/sql/driver"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type EventType string

const (
	EventTypePersonal     EventType = "personal"
	EventTypeProfessional EventType = "professional"
	EventTypeSocial       EventType = "social"
	EventTypeTravel       EventType = "travel"
	EventTypeCelebration  EventType = "celebration"
	EventTypeOther        EventType = "other"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ReminderChannel string

const (
	ReminderEmail        ReminderChannel = "email"
	ReminderNotification ReminderChannel = "notification"
	ReminderSMS          ReminderChannel = "sms"
)

type AttendeeStatus string

const (
	AttendeeInvited  AttendeeStatus = "invited"
	AttendeeAccepted AttendeeStatus = "accepted"
	AttendeeDeclined AttendeeStatus = "declined"
	AttendeeMaybe    AttendeeStatus = "maybe"
)

const DefaultEventColor = "#DC2626"

type Event struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title" validate:"notblank,max=100"`
	Description string      `json:"description" validate:"max=1000"`
	Date        time.Time   `json:"date" validate:"required"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	Time        *TimeWindow `json:"time,omitempty"`
	Location    *Location   `json:"location,omitempty"`
	Type        EventType   `json:"type" validate:"required,oneof=personal professional social travel celebration other"`
	Status      EventStatus `json:"status" validate:"required,oneof=upcoming ongoing completed cancelled"`
	Priority    Priority    `json:"priority" validate:"required,oneof=low medium high"`
	Color       string      `json:"color" validate:"required,hexcolor"`
	MediaIDs    MediaIDs    `json:"-"`
	IsPublic    bool        `json:"isPublic"`
	Reminders   Reminders   `json:"reminders" validate:"dive"`
	Attendees   Attendees   `json:"attendees" validate:"dive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TimeWindow is the free-text start and end of an event, e.g. "18:00".
type TimeWindow struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

func (t TimeWindow) Value() (driver.Value, error) { return jsonValue("TimeWindow", t) }
func (t *TimeWindow) Scan(src interface{}) error  { return jsonScan("TimeWindow", src, t) }

type Coordinates struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

type Location struct {
	Name        string       `json:"name,omitempty"`
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (l Location) Value() (driver.Value, error) { return jsonValue("Location", l) }
func (l *Location) Scan(src interface{}) error  { return jsonScan("Location", src, l) }

// MediaIDs are weak references to media records.
type MediaIDs []uuid.UUID

func (m MediaIDs) Value() (driver.Value, error) {
	if m == nil {
		m = MediaIDs{}
	}
	return jsonValue("MediaIDs", []uuid.UUID(m))
}
func (m *MediaIDs) Scan(src interface{}) error {
	var ids []uuid.UUID
	if err := jsonScan("MediaIDs", src, &ids); err != nil {
		return err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	*m = ids
	return nil
}

type Reminder struct {
	Type    ReminderChannel `json:"type" validate:"required,oneof=email notification sms"`
	Time    *time.Time      `json:"time,omitempty"`
	Message string          `json:"message,omitempty"`
}

type Reminders []Reminder

func (r Reminders) Value() (driver.Value, error) {
	if r == nil {
		r = Reminders{}
	}
	return jsonValue("Reminders", []Reminder(r))
}
func (r *Reminders) Scan(src interface{}) error {
	var out []Reminder
	if err := jsonScan("Reminders", src, &out); err != nil {
		return err
	}
	if out == nil {
		out = []Reminder{}
	}
	*r = out
	return nil
}

type Attendee struct {
	Name   string         `json:"name,omitempty"`
	Email  string         `json:"email,omitempty" validate:"omitempty,email"`
	Status AttendeeStatus `json:"status" validate:"required,oneof=invited accepted declined maybe"`
}

type Attendees []Attendee

func (a Attendees) Value() (driver.Value, error) {
	if a == nil {
		a = Attendees{}
	}
	return jsonValue("Attendees", []Attendee(a))
}
func (a *Attendees) Scan(src interface{}) error {
	var out []Attendee
	if err := jsonScan("Attendees", src, &out); err != nil {
		return err
	}
	if out == nil {
		out = []Attendee{}
	}
	*a = out
	return nil
}
