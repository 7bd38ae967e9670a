package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	writeErrorResponse(context.Background(), w, status, ErrorResponse{Error: msg}, err)
}

func writeErrorResponse(ctx context.Context, w http.ResponseWriter, status int, body ErrorResponse, err error) {
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", body.Error, err)
	} else {
		logger.Error(ctx, "❌  "+body.Error)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, body)
}

// writeServiceError maps a use case failure to its status. fallback is the
// message shown for internal failures, whose details stay in the logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	ctx := r.Context()

	var vErr *apperror.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeErrorResponse(ctx, w, http.StatusBadRequest, ErrorResponse{Error: vErr.Msg, Fields: vErr.Fields}, nil)
	case errors.Is(err, apperror.ErrValidation):
		writeErrorResponse(ctx, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()}, nil)
	case errors.Is(err, apperror.ErrNotFound):
		writeErrorResponse(ctx, w, http.StatusNotFound, ErrorResponse{Error: notFound}, nil)
	default:
		writeErrorResponse(ctx, w, http.StatusInternalServerError, ErrorResponse{Error: fallback}, err)
	}
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// respondCached serves a rendered record, answering 304 when the client
// already holds the current version.
func respondCached(w http.ResponseWriter, r *http.Request, raw []byte, etag string) bool {
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	RespondRawJSON(w, http.StatusOK, raw)
	return false
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return apperror.Validation("invalid JSON body: %v", err)
	}
	return nil
}
