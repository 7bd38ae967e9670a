package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantFields bool
	}{
		{"validation fields", apperror.InvalidFields(map[string]string{"title": "notblank"}), http.StatusBadRequest, "invalid fields", true},
		{"validation message", apperror.Validation("no file uploaded"), http.StatusBadRequest, "no file uploaded", false},
		{"not found", apperror.NotFound("media"), http.StatusNotFound, "Thing not found", false},
		{"upload", apperror.Upload(errors.New("s3 down")), http.StatusInternalServerError, "Something failed", false},
		{"persistence", apperror.Persistence(errors.New("deadlock")), http.StatusInternalServerError, "Something failed", false},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Something failed", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			writeServiceError(rec, req, tc.err, "Thing not found", "Something failed")

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			body := decodeError(t, rec)
			if body.Error != tc.wantMsg {
				t.Errorf("error = %q; want %q", body.Error, tc.wantMsg)
			}
			if (len(body.Fields) > 0) != tc.wantFields {
				t.Errorf("fields = %v", body.Fields)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-store, max-age=0, must-revalidate" {
				t.Errorf("Cache-Control = %q", cc)
			}
		})
	}
}

func TestFallbackHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler()(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("404 handler status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	MethodNotAllowedHandler()(rec, httptest.NewRequest(http.MethodPatch, "/api/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("405 handler status = %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error == "" {
		t.Error("expected an error message")
	}
}
