package api

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether a backing service answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler reports OK while the database answers within two seconds.
func HealthHandler(db Pinger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeErrorResponse(r.Context(), w, http.StatusServiceUnavailable, ErrorResponse{Error: "Database unavailable"}, err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, HealthResponse{Status: "OK", Timestamp: now().UTC()})
	}
}
