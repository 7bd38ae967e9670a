package media

import (
	"context"
	"fmt"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type thumbnailGeneratorSrv struct {
	repo  port.MediaRepository
	strg  port.ObjectStore
	thumb port.Thumbnailer
	cache port.Cache
}

// compile-time check: *thumbnailGeneratorSrv must satisfy port.ThumbnailGenerator
var _ port.ThumbnailGenerator = (*thumbnailGeneratorSrv)(nil)

func NewThumbnailGenerator(repo port.MediaRepository, strg port.ObjectStore, thumb port.Thumbnailer, cache port.Cache) port.ThumbnailGenerator {
	return &thumbnailGeneratorSrv{repo: repo, strg: strg, thumb: thumb, cache: cache}
}

// ThumbnailKey is where the generated preview of a photo is stored.
func ThumbnailKey(id uuid.UUID) string {
	return fmt.Sprintf("thumbnails/%s.webp", id)
}

// GenerateThumbnail renders the WebP preview of an active photo and points the
// record at it. Videos, inactive photos and photos that already have one are skipped.
func (s *thumbnailGeneratorSrv) GenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err)
	}
	if media.Kind != model.KindPhoto || !media.IsActive || media.ThumbnailExternalID != "" {
		logger.Infof(ctx, "media #%s needs no thumbnail, skipping", id)
		return nil
	}

	file, err := s.strg.GetFile(ctx, media.Kind, media.ExternalID)
	if err != nil {
		return fmt.Errorf("get original %q: %w", media.ExternalID, err)
	}
	defer func(file io.ReadCloser) {
		if err := file.Close(); err != nil {
			logger.Warnf(ctx, "failed to close reader for %q: %v", media.ExternalID, err)
		}
	}(file)

	data, err := s.thumb.Thumbnail(file)
	if err != nil {
		return fmt.Errorf("render thumbnail of media #%s: %w", id, err)
	}

	stored, err := s.strg.Upload(ctx, port.UploadObjectInput{
		Kind:        media.Kind,
		Key:         ThumbnailKey(id),
		ContentType: "image/webp",
		Data:        data,
	})
	if err != nil {
		return fmt.Errorf("save thumbnail of media #%s: %w", id, err)
	}

	updated, err := s.repo.SetThumbnail(ctx, id, stored.URL, stored.ExternalID)
	if err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}
	if !updated {
		// deleted while rendering
		logger.Warnf(ctx, "media #%s is no longer active, dropping its thumbnail", id)
		if err := s.strg.Remove(ctx, media.Kind, stored.ExternalID); err != nil {
			logger.Warnf(ctx, "failed to remove thumbnail %q: %v", stored.ExternalID, err)
		}
		return nil
	}

	if err := s.cache.DeleteDetails(ctx, port.ResourceMedia, id); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", id, err)
	}
	return nil
}
