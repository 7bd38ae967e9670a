package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the single-record getters.
// It provides caching and returns both the JSON representation of the record
// and an ETag value derived from it.
type HTTPRenderer interface {
	RenderGetMedia(ctx context.Context, getter MediaGetter, id uuid.UUID) ([]byte, string, error)
	RenderGetEvent(ctx context.Context, getter EventGetter, id uuid.UUID) ([]byte, string, error)
}
