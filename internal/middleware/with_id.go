package middleware

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
)

// WithID parses the {id} path parameter of media and event routes.
func WithID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, "id")
			if raw == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, "Invalid ID", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(api_context.WithID(r.Context(), id)))
		})
	}
}
