package worker

import (
	"context"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

// GenerateThumbnailHandler handles a generate-thumbnail task.
// A media that no longer exists is not retried.
func GenerateThumbnailHandler(ctx context.Context, p task.GenerateThumbnailPayload, svc port.ThumbnailGenerator) error {
	id, err := uuid.Parse(p.MediaID)
	if err != nil {
		logger.Errorf(ctx, "❌  Invalid media ID %q: %v", p.MediaID, err)
		return errors.Join(err, asynq.SkipRetry)
	}

	if err := svc.GenerateThumbnail(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			logger.Warnf(ctx, "⚠️  Media #%s is gone, dropping thumbnail task", id)
			return errors.Join(err, asynq.SkipRetry)
		}
		logger.Errorf(ctx, "❌  Failed to generate thumbnail for media #%s: %v", id, err)
		return err
	}

	logger.Infof(ctx, "✅  Thumbnail ready for media #%s", id)
	return nil
}
