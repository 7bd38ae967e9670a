package task

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

func TestGenerateThumbnailTask_RoundTrip(t *testing.T) {
	id := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

	task, err := NewGenerateThumbnailTask(id)
	if err != nil {
		t.Fatalf("NewGenerateThumbnailTask() error: %v", err)
	}
	if task.Type() != TypeGenerateThumbnail {
		t.Errorf("type = %q; want %q", task.Type(), TypeGenerateThumbnail)
	}

	p, err := ParseGenerateThumbnailPayload(task)
	if err != nil {
		t.Fatalf("ParseGenerateThumbnailPayload() error: %v", err)
	}
	if p.MediaID != id {
		t.Errorf("MediaID = %q; want %q", p.MediaID, id)
	}
}

func TestParseGenerateThumbnailPayload_Invalid(t *testing.T) {
	if _, err := ParseGenerateThumbnailPayload(asynq.NewTask(TypeGenerateThumbnail, []byte("{"))); err == nil {
		t.Fatal("expected an error for a broken payload")
	}
}

func TestNoopDispatcher(t *testing.T) {
	if err := NewNoopDispatcher().EnqueueGenerateThumbnail(context.Background(), uuid.NewUUID()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type fakeEnqueuer struct {
	err  error
	got  *asynq.Task
	opts []asynq.Option
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, t *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.got, f.opts = t, opts
	if f.err != nil {
		return nil, f.err
	}
	return &asynq.TaskInfo{ID: "x"}, nil
}

func (f *fakeEnqueuer) Close() error { return nil }

func TestDispatcher_EnqueueGenerateThumbnail(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"queued", nil, false},
		{"already queued", asynq.ErrTaskIDConflict, false},
		{"redis down", errors.New("dial tcp: refused"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fe := &fakeEnqueuer{err: tc.err}
			d := &Dispatcher{client: fe}

			err := d.EnqueueGenerateThumbnail(context.Background(), id)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v; wantErr %v", err, tc.wantErr)
			}
			if fe.got == nil || fe.got.Type() != TypeGenerateThumbnail {
				t.Fatalf("expected a %s task, got %+v", TypeGenerateThumbnail, fe.got)
			}
			if len(fe.opts) != 1 || fe.opts[0].Type() != asynq.TaskIDOpt || fe.opts[0].Value() != "thumbnail:"+id.String() {
				t.Errorf("unexpected options: %v", fe.opts)
			}
		})
	}
}
