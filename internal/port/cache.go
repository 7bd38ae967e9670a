package port

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// Resource names the family of a cached record.
type Resource string

const (
	ResourceMedia Resource = "media"
	ResourceEvent Resource = "event"
)

// Cache stores rendered record details and their ETag.
type Cache interface {
	GetDetails(ctx context.Context, res Resource, id uuid.UUID) ([]byte, error)
	GetEtag(ctx context.Context, res Resource, id uuid.UUID) (string, error)
	SetDetails(ctx context.Context, res Resource, id uuid.UUID, data []byte, validUntil time.Time)
	SetEtag(ctx context.Context, res Resource, id uuid.UUID, etag string, validUntil time.Time)
	DeleteDetails(ctx context.Context, res Resource, id uuid.UUID) error
}
