package mariadb

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

const eventColumns = `id, title, description, date, end_date, time_window, location, type, status, priority, color, media_ids, is_public, reminders, attendees, created_at, updated_at`

type EventRepository struct {
	db *sql.DB
}

// compile-time check: *EventRepository must satisfy port.EventRepository
var _ port.EventRepository = (*EventRepository)(nil)

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	logger.Infof(ctx, "creating database record for event #%s...", e.ID)

	const query = `
      INSERT INTO events
        (id, title, description, date, end_date, time_window, location, type, status, priority, color, media_ids, is_public, reminders, attendees)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.EndDate,
		e.Time, e.Location, e.Type, e.Status, e.Priority, e.Color,
		e.MediaIDs, e.IsPublic, e.Reminders, e.Attendees,
	)
	return err
}

func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	logger.Infof(ctx, "updating database record for event #%s...", e.ID)

	const query = `
      UPDATE events
      SET
        title       = ?,
        description = ?,
        date        = ?,
        end_date    = ?,
        time_window = ?,
        location    = ?,
        type        = ?,
        status      = ?,
        priority    = ?,
        color       = ?,
        media_ids   = ?,
        is_public   = ?,
        reminders   = ?,
        attendees   = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		e.Title, e.Description, e.Date, e.EndDate,
		e.Time, e.Location, e.Type, e.Status, e.Priority, e.Color,
		e.MediaIDs, e.IsPublic, e.Reminders, e.Attendees,
		e.ID, // WHERE clause
	)
	return err
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	logger.Debugf(ctx, "fetching event #%s from the database...", id)

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	return scanEvent(r.db.QueryRowContext(ctx, query, id))
}

// Delete removes the event for good. It returns sql.ErrNoRows when nothing matched.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for event #%s...", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns events matching the filter by date ascending.
func (r *EventRepository) List(ctx context.Context, f port.EventFilter) ([]*model.Event, error) {
	where, args := eventWhere(f)
	query := `SELECT ` + eventColumns + ` FROM events` + where + ` ORDER BY date ASC, id ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	events := []*model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var e model.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.EndDate,
		&e.Time, &e.Location, &e.Type, &e.Status, &e.Priority, &e.Color,
		&e.MediaIDs, &e.IsPublic, &e.Reminders, &e.Attendees,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func eventWhere(f port.EventFilter) (string, []any) {
	var clauses []string
	var args []any

	if f.PublicOnly {
		clauses = append(clauses, "is_public = 1")
	}
	if f.From != nil {
		clauses = append(clauses, "date >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		clauses = append(clauses, "date <= ?")
		args = append(args, *f.To)
	}
	if f.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, string(f.Type))
	}
	if len(f.Statuses) > 0 {
		clauses = append(clauses, "status IN "+placeholderList(len(f.Statuses)))
		for _, s := range f.Statuses {
			args = append(args, string(s))
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
