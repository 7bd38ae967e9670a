package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	Out  []byte
	Etag string

	// captured inputs
	GotID uuid.UUID

	// errors
	Err error

	// call flags
	MediaCalled bool
	EventCalled bool
}

func (m *HTTPRenderer) RenderGetMedia(ctx context.Context, getter port.MediaGetter, id uuid.UUID) ([]byte, string, error) {
	m.MediaCalled = true
	m.GotID = id
	return m.Out, m.Etag, m.Err
}

func (m *HTTPRenderer) RenderGetEvent(ctx context.Context, getter port.EventGetter, id uuid.UUID) ([]byte, string, error) {
	m.EventCalled = true
	m.GotID = id
	return m.Out, m.Etag, m.Err
}
