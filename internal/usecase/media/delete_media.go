package media

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type deleteMediaSrv struct {
	repo  port.MediaRepository
	strg  port.ObjectStore
	cache port.Cache
}

// compile-time check: *deleteMediaSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*deleteMediaSrv)(nil)

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(repo port.MediaRepository, strg port.ObjectStore, cache port.Cache) port.MediaDeleter {
	return &deleteMediaSrv{repo: repo, strg: strg, cache: cache}
}

// DeleteMedia deactivates the record, removes the stored files and clears the
// cache. Store failures are logged only: the media goes inactive regardless.
func (s *deleteMediaSrv) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err)
	}

	if media.IsActive {
		if err := s.repo.Deactivate(ctx, media.ID); err != nil {
			return apperror.Persistence(err)
		}
		// a thumbnail saved before deactivation is only visible from here on
		if fresh, err := s.repo.GetByID(ctx, id); err == nil {
			media = fresh
		}

		if err := s.strg.Remove(ctx, media.Kind, media.ExternalID); err != nil {
			logger.Warnf(ctx, "failed to remove file %q: %v", media.ExternalID, err)
		}
		if media.ThumbnailExternalID != "" {
			if err := s.strg.Remove(ctx, media.Kind, media.ThumbnailExternalID); err != nil {
				logger.Warnf(ctx, "failed to remove thumbnail %q: %v", media.ThumbnailExternalID, err)
			}
		}
	}

	if err := s.cache.DeleteDetails(ctx, port.ResourceMedia, media.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", media.ID, err)
	}

	return nil
}
