package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// EventRepo implements port.EventRepository for tests.
type EventRepo struct {
	// stored values
	EventRecord *model.Event
	ListOut     []*model.Event

	// captured inputs
	Created   *model.Event
	Updated   *model.Event
	DeletedID uuid.UUID
	GotFilter port.EventFilter

	// errors
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error

	// call flags
	GetCalled    bool
	DeleteCalled bool
	ListCalled   bool
}

func (m *EventRepo) Create(ctx context.Context, e *model.Event) error {
	m.Created = e
	return m.CreateErr
}

func (m *EventRepo) Update(ctx context.Context, e *model.Event) error {
	m.Updated = e
	return m.UpdateErr
}

func (m *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.EventRecord, nil
}

func (m *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *EventRepo) List(ctx context.Context, f port.EventFilter) ([]*model.Event, error) {
	m.ListCalled = true
	m.GotFilter = f
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
