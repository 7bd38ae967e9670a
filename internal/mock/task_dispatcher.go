package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// Dispatcher implements port.TaskDispatcher for tests.
type Dispatcher struct {
	ThumbnailCalled bool
	ThumbnailIDs    []uuid.UUID
	ThumbnailErr    error
}

func (m *Dispatcher) EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	m.ThumbnailCalled = true
	m.ThumbnailIDs = append(m.ThumbnailIDs, id)
	return m.ThumbnailErr
}
