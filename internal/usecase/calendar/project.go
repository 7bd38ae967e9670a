package calendar

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// project resolves the media references of every event with a single lookup.
// References to medias that no longer exist are dropped; order is kept.
func project(ctx context.Context, medias port.MediaRepository, events []*model.Event) ([]*port.EventOutput, error) {
	var ids []uuid.UUID
	seen := map[uuid.UUID]struct{}{}
	for _, e := range events {
		for _, id := range e.MediaIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	refs := map[uuid.UUID]model.MediaRef{}
	if len(ids) > 0 {
		var err error
		if refs, err = medias.GetRefs(ctx, ids); err != nil {
			return nil, apperror.Persistence(err)
		}
	}

	out := make([]*port.EventOutput, 0, len(events))
	for _, e := range events {
		resolved := make([]model.MediaRef, 0, len(e.MediaIDs))
		for _, id := range e.MediaIDs {
			if ref, ok := refs[id]; ok {
				resolved = append(resolved, ref)
			}
		}
		out = append(out, &port.EventOutput{Event: e, Media: resolved})
	}
	return out, nil
}

func projectOne(ctx context.Context, medias port.MediaRepository, e *model.Event) (*port.EventOutput, error) {
	out, err := project(ctx, medias, []*model.Event{e})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}
