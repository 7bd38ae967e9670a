package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

// enqueuer is the part of *asynq.Client the dispatcher needs.
type enqueuer interface {
	EnqueueContext(ctx context.Context, t *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Dispatcher pushes media tasks onto the asynq queues in Redis.
type Dispatcher struct {
	client enqueuer
}

var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	return &Dispatcher{client: asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})}
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}

// EnqueueGenerateThumbnail queues the thumbnail of a photo. The task id is
// derived from the media id, so a photo already waiting in the queue is not
// queued twice.
func (d *Dispatcher) EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	t, err := NewGenerateThumbnailTask(id.String())
	if err != nil {
		return err
	}

	_, err = d.client.EnqueueContext(ctx, t, asynq.TaskID(thumbnailTaskID(id)))
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Debugf(ctx, "thumbnail of media #%s is already queued", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue thumbnail of media #%s: %w", id, err)
	}
	return nil
}

func thumbnailTaskID(id uuid.UUID) string {
	return "thumbnail:" + id.String()
}
