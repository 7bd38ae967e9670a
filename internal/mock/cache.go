package mock

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// Cache implements port.Cache for tests.
type Cache struct {
	// stored values
	Details []byte
	Etag    string

	// captured inputs
	GotResource port.Resource
	ValidUntil  time.Time
	DeletedIDs  []uuid.UUID

	// errors
	GetErr     error
	GetEtagErr error
	DelErr     error

	// call flags
	GetCalled     bool
	GetEtagCalled bool
	SetCalled     bool
	SetEtagCalled bool
	DelCalled     bool
}

func (c *Cache) GetDetails(ctx context.Context, res port.Resource, id uuid.UUID) ([]byte, error) {
	c.GetCalled = true
	c.GotResource = res
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.Details, nil
}

func (c *Cache) GetEtag(ctx context.Context, res port.Resource, id uuid.UUID) (string, error) {
	c.GetEtagCalled = true
	if c.GetEtagErr != nil {
		return "", c.GetEtagErr
	}
	return c.Etag, nil
}

func (c *Cache) SetDetails(ctx context.Context, res port.Resource, id uuid.UUID, data []byte, validUntil time.Time) {
	c.SetCalled = true
	c.GotResource = res
	c.Details = data
	c.ValidUntil = validUntil
}

func (c *Cache) SetEtag(ctx context.Context, res port.Resource, id uuid.UUID, etag string, validUntil time.Time) {
	c.SetEtagCalled = true
	c.Etag = etag
}

func (c *Cache) DeleteDetails(ctx context.Context, res port.Resource, id uuid.UUID) error {
	c.DelCalled = true
	c.GotResource = res
	c.DeletedIDs = append(c.DeletedIDs, id)
	return c.DelErr
}
