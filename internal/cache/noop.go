package cache

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetDetails(context.Context, port.Resource, uuid.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtag(context.Context, port.Resource, uuid.UUID) (string, error) {
	return "", nil
}

func (n *NoopCache) SetDetails(context.Context, port.Resource, uuid.UUID, []byte, time.Time) {}

func (n *NoopCache) SetEtag(context.Context, port.Resource, uuid.UUID, string, time.Time) {}

func (n *NoopCache) DeleteDetails(context.Context, port.Resource, uuid.UUID) error { return nil }
