package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	mediaSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/media"
)

const mediaNotFound = "Media not found"

// maxUploadBody leaves room for the media, its poster and the text fields.
const maxUploadBody = 2*mediaSvc.MaxFileSize + 1<<20

type MediaResponse struct {
	Message string       `json:"message"`
	Media   *model.Media `json:"media"`
}

func ListMediaHandler(svc port.MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, err := positiveInt(q, "page")
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to fetch media")
			return
		}
		limit, err := positiveInt(q, "limit")
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to fetch media")
			return
		}

		out, err := svc.ListMedia(r.Context(), port.ListMediaInput{
			Page:         page,
			Limit:        limit,
			Kind:         model.Kind(q.Get("type")),
			Category:     model.Category(q.Get("category")),
			FeaturedOnly: q.Get("featured") == "true",
			Search:       q.Get("search"),
		})
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to fetch media")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Returned page %d of media (%d total)", out.CurrentPage, out.Total)
	}
}

func GetMediaHandler(renderer port.HTTPRenderer, svc port.MediaGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetMedia(r.Context(), svc, id)
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to fetch media")
			return
		}

		if respondCached(w, r, raw, etag) {
			logger.Infof(r.Context(), "✅  Returning cached media #%s", id)
			return
		}
		logger.Infof(r.Context(), "✅  Successfully returned details for media #%s", id)
	}
}

func UploadMediaHandler(svc port.MediaUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeServiceError(w, r, apperror.Upload(err), mediaNotFound, "Upload failed")
				return
			}
			writeServiceError(w, r, apperror.Validation("invalid multipart form: %v", err), mediaNotFound, "Upload failed")
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		file, err := formFile(r, "media")
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Upload failed")
			return
		}
		poster, err := formFile(r, "thumbnail")
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Upload failed")
			return
		}

		m, err := svc.UploadMedia(r.Context(), port.UploadMediaInput{
			File:        file,
			Poster:      poster,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Category:    model.Category(r.FormValue("category")),
			Tags:        r.FormValue("tags"),
			Metadata:    r.FormValue("metadata"),
		})
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Upload failed")
			return
		}

		RespondJSON(w, http.StatusCreated, MediaResponse{Message: "Media uploaded successfully", Media: m})
		logger.Infof(r.Context(), "✅  Successfully uploaded %s #%s", m.Kind, m.ID)
	}
}

// formFile buffers a multipart file part. A missing part yields nil. Reading
// stops just past the size limit so the use case can reject oversize files.
func formFile(r *http.Request, field string) (*port.UploadedFile, error) {
	f, fh, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Validation("invalid %q part: %v", field, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, mediaSvc.MaxFileSize+1))
	if err != nil {
		return nil, apperror.Upload(fmt.Errorf("read %q part: %w", field, err))
	}
	return &port.UploadedFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func UpdateMediaHandler(svc port.MediaUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var patch port.MediaPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to update media")
			return
		}

		m, err := svc.UpdateMedia(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to update media")
			return
		}

		RespondJSON(w, http.StatusOK, MediaResponse{Message: "Media updated successfully", Media: m})
		logger.Infof(r.Context(), "✅  Successfully updated media #%s", id)
	}
}

func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteMedia(r.Context(), id); err != nil {
			writeServiceError(w, r, err, mediaNotFound, "Failed to delete media")
			return
		}

		RespondJSON(w, http.StatusOK, MessageResponse{Message: "Media deleted successfully"})
		logger.Infof(r.Context(), "✅  Successfully deleted media #%s", id)
	}
}
