package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
	"github.com/gabriel-vasile/mimetype"
)

type mediaUploaderSrv struct {
	repo  port.MediaRepository
	strg  port.ObjectStore
	tasks port.TaskDispatcher
	genID port.UUIDGen
	now   port.Clock
}

// compile-time check: *mediaUploaderSrv must satisfy port.MediaUploader
var _ port.MediaUploader = (*mediaUploaderSrv)(nil)

func NewMediaUploader(repo port.MediaRepository, strg port.ObjectStore, tasks port.TaskDispatcher, genID port.UUIDGen, now port.Clock) port.MediaUploader {
	return &mediaUploaderSrv{repo: repo, strg: strg, tasks: tasks, genID: genID, now: now}
}

// uploadFields are the user supplied fields checked before anything is sent to the store.
type uploadFields struct {
	Title       string         `json:"title" validate:"notblank,max=100"`
	Description string         `json:"description" validate:"max=500"`
	Category    model.Category `json:"category" validate:"required,oneof=Portrait Lifestyle Fashion Style Moments Beauty Elegance Grace Living Events"`
}

func (s *mediaUploaderSrv) UploadMedia(ctx context.Context, in port.UploadMediaInput) (*model.Media, error) {
	ext, err := checkFile(in.File, "media")
	if err != nil {
		return nil, err
	}
	contentType := normaliseMimeType(in.File.ContentType)
	kind := model.KindFromMimeType(contentType)

	var posterExt string
	if in.Poster != nil && kind == model.KindVideo {
		if posterExt, err = checkFile(in.Poster, "thumbnail"); err != nil {
			return nil, err
		}
		if !IsImage(in.Poster.ContentType) {
			return nil, apperror.Validation("thumbnail must be an image, got %q", in.Poster.ContentType)
		}
	}

	metadata, err := model.ParseMediaMetadata(in.Metadata)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}

	fields := uploadFields{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
	}
	if err := validation.Check(fields); err != nil {
		return nil, err
	}

	id := s.genID()
	stored, err := s.strg.Upload(ctx, port.UploadObjectInput{
		Kind:        kind,
		Key:         fmt.Sprintf("%s/%s%s", kind.Folder(), id, ext),
		ContentType: contentType,
		Data:        in.File.Data,
	})
	if err != nil {
		return nil, apperror.Upload(err)
	}

	media := &model.Media{
		ID:          id,
		Title:       fields.Title,
		Description: fields.Description,
		Kind:        kind,
		Category:    fields.Category,
		URL:         stored.URL,
		Thumbnail:   stored.URL,
		ExternalID:  stored.ExternalID,
		SizeBytes:   int64(len(in.File.Data)),
		Dimensions:  stored.Dimensions,
		Tags:        model.ParseTags(in.Tags),
		IsActive:    true,
		UploadDate:  s.now().UTC(),
		Metadata:    metadata,
	}

	if posterExt != "" {
		poster, err := s.strg.Upload(ctx, port.UploadObjectInput{
			Kind:        kind,
			Key:         fmt.Sprintf("%s/%s_poster%s", kind.Folder(), id, posterExt),
			ContentType: normaliseMimeType(in.Poster.ContentType),
			Data:        in.Poster.Data,
		})
		if err != nil {
			return nil, apperror.Upload(err)
		}
		media.Thumbnail = poster.URL
		media.ThumbnailExternalID = poster.ExternalID
	}

	if err := s.repo.Create(ctx, media); err != nil {
		// TODO: enqueue removal of media.ExternalID (and the poster) once a cleanup task exists; the objects are orphaned for now.
		logger.Errorf(ctx, "stored %s %q but could not record it: %v", kind, media.ExternalID, err)
		return nil, apperror.Persistence(err)
	}

	if kind == model.KindPhoto {
		if err := s.tasks.EnqueueGenerateThumbnail(ctx, media.ID); err != nil {
			logger.Warnf(ctx, "failed to enqueue thumbnail task for media #%s: %v", media.ID, err)
		}
	}

	return media, nil
}

// checkFile validates an uploaded file and returns its lower-cased extension.
func checkFile(f *port.UploadedFile, field string) (string, error) {
	if f == nil {
		return "", apperror.Validation("no file uploaded in field %q", field)
	}
	if len(f.Data) == 0 {
		return "", apperror.Validation("file %q is empty", f.Filename)
	}
	if len(f.Data) > MaxFileSize {
		return "", apperror.Upload(fmt.Errorf("file %q too large: %d bytes (max size: %d bytes)", f.Filename, len(f.Data), MaxFileSize))
	}

	ext := strings.ToLower(filepath.Ext(f.Filename))
	if !IsExtensionAllowed(ext) {
		return "", apperror.Validation("unsupported file extension %q", ext)
	}
	if !IsMimeTypeAllowed(f.ContentType) {
		return "", apperror.Validation("unsupported content type %q", f.ContentType)
	}

	sniffed := mimetype.Detect(f.Data).String()
	if family(sniffed) != family(f.ContentType) {
		return "", apperror.Validation("file %q content (%s) does not match its declared type %q", f.Filename, sniffed, f.ContentType)
	}
	return ext, nil
}
