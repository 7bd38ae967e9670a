package task

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// NoopDispatcher is used when no Redis is configured: photos keep their
// original as thumbnail.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "no task queue configured, skipping thumbnail of media #%s", id)
	return nil
}
