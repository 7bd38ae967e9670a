package calendar

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

var (
	mockID  = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	mediaA  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	mediaB  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	fixedAt = time.Date(2025, 3, 15, 17, 45, 0, 0, time.UTC)
)

func fixedID() uuid.UUID  { return mockID }
func fixedNow() time.Time { return fixedAt }

func flex(s string) *model.FlexTime {
	t, err := model.ParseTime(s)
	if err != nil {
		panic(err)
	}
	f := model.FlexTime(t)
	return &f
}

func storedEvent() *model.Event {
	return &model.Event{
		ID:        mockID,
		Title:     "Opening",
		Date:      time.Date(2025, 4, 2, 18, 0, 0, 0, time.UTC),
		Type:      model.EventTypeProfessional,
		Status:    model.EventStatusUpcoming,
		Priority:  model.PriorityHigh,
		Color:     model.DefaultEventColor,
		MediaIDs:  model.MediaIDs{mediaA, mediaB},
		IsPublic:  true,
		Reminders: model.Reminders{},
		Attendees: model.Attendees{},
	}
}

func refs() map[uuid.UUID]model.MediaRef {
	return map[uuid.UUID]model.MediaRef{
		mediaA: {ID: mediaA, URL: "https://cdn.test/a.png", Title: "A", Kind: model.KindPhoto},
	}
}
