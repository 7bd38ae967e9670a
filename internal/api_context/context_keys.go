// Package api_context carries per-request values set by the HTTP middlewares.
package api_context

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

// WithID stores the media or event id parsed from the path.
func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, IDKey, id)
}

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

// WithAuth stores the verified token subject and its roles.
func WithAuth(ctx context.Context, sub string, roles []string) context.Context {
	ctx = context.WithValue(ctx, AuthUserIDKey, sub)
	return context.WithValue(ctx, AuthRolesKey, roles)
}

// AuthUserIDFromContext returns the `sub` claim of the bearer token, if any.
func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok && id != ""
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
