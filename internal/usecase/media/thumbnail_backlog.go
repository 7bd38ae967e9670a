package media

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// BacklogDelay leaves fresh uploads to the task enqueued at upload time.
const BacklogDelay = 10 * time.Minute

type thumbnailBacklogSrv struct {
	repo  port.MediaRepository
	tasks port.TaskDispatcher
	now   port.Clock
}

// compile-time check: *thumbnailBacklogSrv must satisfy port.ThumbnailBacklog
var _ port.ThumbnailBacklog = (*thumbnailBacklogSrv)(nil)

// NewThumbnailBacklog constructs a ThumbnailBacklog implementation.
func NewThumbnailBacklog(repo port.MediaRepository, tasks port.TaskDispatcher, now port.Clock) port.ThumbnailBacklog {
	return &thumbnailBacklogSrv{repo: repo, tasks: tasks, now: now}
}

// EnqueueThumbnailBacklog looks for active photos uploaded more than BacklogDelay
// ago that still have no generated thumbnail and enqueues a task for each.
func (s *thumbnailBacklogSrv) EnqueueThumbnailBacklog(ctx context.Context) error {
	cutoff := s.now().Add(-BacklogDelay)
	ids, err := s.repo.ListPhotosWithoutThumbnailBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no photos found without a thumbnail")
	}

	for _, id := range ids {
		logger.Infof(ctx, "enqueueing thumbnail for media #%s", id)
		if err := s.tasks.EnqueueGenerateThumbnail(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue thumbnail task for media #%s: %v", id, err)
		}
	}
	return nil
}
