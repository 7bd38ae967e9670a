package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

var eventCols = []string{
	"id", "title", "description", "date", "end_date", "time_window", "location", "type", "status", "priority",
	"color", "media_ids", "is_public", "reminders", "attendees", "created_at", "updated_at",
}

func TestEventRepository_Create(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewEventRepository(sqlDB)

	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	e := &model.Event{
		ID:       mockID,
		Title:    "Vernissage",
		Date:     date,
		Time:     &model.TimeWindow{Start: "18:00"},
		Type:     model.EventTypeProfessional,
		Status:   model.EventStatusUpcoming,
		Priority: model.PriorityHigh,
		Color:    model.DefaultEventColor,
		MediaIDs: model.MediaIDs{mockID},
		IsPublic: true,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO events`)).
		WithArgs(
			e.ID, "Vernissage", "", date, nil,
			[]byte(`{"start":"18:00"}`), nil, "professional", "upcoming", "high", "#DC2626",
			[]byte(`["aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"]`), true, []byte(`[]`), []byte(`[]`),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestEventRepository_Update(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewEventRepository(sqlDB)

	e := &model.Event{ID: mockID, Title: "Moved", Type: model.EventTypeOther, Status: model.EventStatusCancelled,
		Priority: model.PriorityLow, Color: "#000000"}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE events`)).
		WithArgs(
			"Moved", "", sqlmock.AnyArg(), nil, nil, nil, "other", "cancelled", "low", "#000000",
			[]byte(`[]`), false, []byte(`[]`), []byte(`[]`), e.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), e); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		sqlDB, mock := newMock(t)
		repo := NewEventRepository(sqlDB)
		date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := date.Add(48 * time.Hour)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + eventColumns + ` FROM events WHERE id = ?`)).
			WithArgs(mockID).
			WillReturnRows(sqlmock.NewRows(eventCols).AddRow(
				idBytes(mockID), "Trip", "", date, end, nil, []byte(`{"name":"Lisbon"}`),
				"travel", "upcoming", "medium", "#DC2626", []byte(`["aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"]`), int64(1),
				[]byte(`[{"type":"email"}]`), nil, date, date,
			))

		e, err := repo.GetByID(context.Background(), mockID)
		if err != nil {
			t.Fatalf("GetByID() error: %v", err)
		}
		if e.EndDate == nil || !e.EndDate.Equal(end) {
			t.Errorf("EndDate = %v; want %v", e.EndDate, end)
		}
		if e.Time != nil {
			t.Errorf("expected no time window, got %+v", e.Time)
		}
		if e.Location == nil || e.Location.Name != "Lisbon" {
			t.Errorf("Location = %+v", e.Location)
		}
		if len(e.MediaIDs) != 1 || e.MediaIDs[0] != mockID || !e.IsPublic {
			t.Errorf("unexpected event: %+v", e)
		}
		if len(e.Reminders) != 1 || e.Attendees == nil || len(e.Attendees) != 0 {
			t.Errorf("reminders=%v attendees=%v", e.Reminders, e.Attendees)
		}
	})

	t.Run("missing", func(t *testing.T) {
		sqlDB, mock := newMock(t)
		repo := NewEventRepository(sqlDB)
		mock.ExpectQuery("SELECT").WithArgs(mockID).WillReturnRows(sqlmock.NewRows(eventCols))

		if _, err := repo.GetByID(context.Background(), mockID); !errors.Is(err, sql.ErrNoRows) {
			t.Fatalf("expected sql.ErrNoRows, got %v", err)
		}
	})
}

func TestEventRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "nothing matched", affected: 0, wantErr: sql.ErrNoRows},
		{name: "exec failure", execErr: errors.New("boom"), wantErr: errors.New("boom")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock := newMock(t)
			repo := NewEventRepository(sqlDB)

			exp := mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM events WHERE id = ?`)).WithArgs(mockID)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}

			err := repo.Delete(context.Background(), mockID)
			switch {
			case tc.wantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tc.wantErr != nil && (err == nil || err.Error() != tc.wantErr.Error()):
				t.Fatalf("got %v; want %v", err, tc.wantErr)
			}
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	t.Run("all filters", func(t *testing.T) {
		sqlDB, mock := newMock(t)
		repo := NewEventRepository(sqlDB)

		from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)
		f := port.EventFilter{
			PublicOnly: true,
			From:       &from,
			To:         &to,
			Type:       model.EventTypeSocial,
			Statuses:   []model.EventStatus{model.EventStatusUpcoming, model.EventStatusOngoing},
			Limit:      5,
		}

		mock.ExpectQuery(regexp.QuoteMeta(`FROM events WHERE is_public = 1 AND date >= ? AND date <= ? AND type = ? AND status IN (?, ?) ORDER BY date ASC, id ASC LIMIT ?`)).
			WithArgs(from, to, "social", "upcoming", "ongoing", 5).
			WillReturnRows(sqlmock.NewRows(eventCols))

		events, err := repo.List(context.Background(), f)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if events == nil || len(events) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", events)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})

	t.Run("no filters", func(t *testing.T) {
		sqlDB, mock := newMock(t)
		repo := NewEventRepository(sqlDB)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + eventColumns + ` FROM events ORDER BY date ASC, id ASC`)).
			WithoutArgs().
			WillReturnError(errors.New("query fail"))

		if _, err := repo.List(context.Background(), port.EventFilter{}); err == nil || err.Error() != "query fail" {
			t.Fatalf("expected query fail, got %v", err)
		}
	})
}
