package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// TaskDispatcher enqueues asynchronous media processing.
type TaskDispatcher interface {
	EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error
}
