package media

import (
	"context"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

type mediaUpdaterSrv struct {
	repo  port.MediaRepository
	cache port.Cache
}

// compile-time check: *mediaUpdaterSrv must satisfy port.MediaUpdater
var _ port.MediaUpdater = (*mediaUpdaterSrv)(nil)

func NewMediaUpdater(repo port.MediaRepository, cache port.Cache) port.MediaUpdater {
	return &mediaUpdaterSrv{repo: repo, cache: cache}
}

// UpdateMedia replaces every field present in the patch. A null for a field
// that cannot be empty is rejected.
func (s *mediaUpdaterSrv) UpdateMedia(ctx context.Context, id uuid.UUID, patch port.MediaPatch) (*model.Media, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}

	nulls := map[string]string{}
	if patch.Title.Null {
		nulls["title"] = "required"
	}
	if patch.Category.Null {
		nulls["category"] = "required"
	}
	if patch.IsFeatured.Null {
		nulls["isFeatured"] = "required"
	}
	if len(nulls) > 0 {
		return nil, apperror.InvalidFields(nulls)
	}

	if v, ok := patch.Title.Get(); ok {
		media.Title = strings.TrimSpace(v)
	}
	if patch.Description.Set {
		media.Description = strings.TrimSpace(patch.Description.Value)
	}
	if v, ok := patch.Category.Get(); ok {
		media.Category = v
	}
	if patch.Tags.Set {
		media.Tags = model.NormaliseTags(patch.Tags.Value)
	}
	if v, ok := patch.IsFeatured.Get(); ok {
		media.IsFeatured = v
	}
	if patch.Metadata.Set {
		media.Metadata = patch.Metadata.Value
	}

	if err := validation.Check(media); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, media); err != nil {
		return nil, apperror.Persistence(err)
	}

	if err := s.cache.DeleteDetails(ctx, port.ResourceMedia, media.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", media.ID, err)
	}

	return media, nil
}
