package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// DefaultTTL is how long a rendered record stays cached. It matches the
// max-age handlers advertise.
const DefaultTTL = 5 * time.Minute

type httpRenderer struct {
	cache port.Cache
	ttl   time.Duration
	now   port.Clock
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache, ttl: DefaultTTL, now: time.Now}
}

// RenderGetMedia fetches media details either from cache or from the wrapped use
// case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderGetMedia(ctx context.Context, getter port.MediaGetter, id uuid.UUID) ([]byte, string, error) {
	return r.render(ctx, port.ResourceMedia, id, func() (any, error) {
		return getter.GetMedia(ctx, id)
	})
}

// RenderGetEvent does the same for a calendar event with its media resolved.
func (r *httpRenderer) RenderGetEvent(ctx context.Context, getter port.EventGetter, id uuid.UUID) ([]byte, string, error) {
	return r.render(ctx, port.ResourceEvent, id, func() (any, error) {
		return getter.GetEvent(ctx, id)
	})
}

func (r *httpRenderer) render(ctx context.Context, res port.Resource, id uuid.UUID, load func() (any, error)) ([]byte, string, error) {
	raw, err := r.cache.GetDetails(ctx, res, id)
	etag, errEtag := r.cache.GetEtag(ctx, res, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := load()
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = ETag(raw)
	validUntil := r.now().Add(r.ttl)
	r.cache.SetDetails(ctx, res, id, raw, validUntil)
	r.cache.SetEtag(ctx, res, id, etag, validUntil)

	return raw, etag, nil
}

// ETag is the quoted CRC32 of a rendered body.
func ETag(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}
