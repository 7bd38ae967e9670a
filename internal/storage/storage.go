// Package storage keeps uploaded media in an S3-compatible object store. Photos
// and videos live in their own bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	_ "golang.org/x/image/webp"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	// PublicURL is the base the public object URLs are built on, e.g. a CDN.
	PublicURL    string
	PhotosBucket string
	VideosBucket string
}

func ConfigFromSettings(s *config.Settings) Config {
	return Config{
		Endpoint:     s.StorageEndpoint,
		AccessKey:    s.StorageAccessKey,
		SecretKey:    s.StorageSecretKey,
		UseSSL:       s.StorageUseSSL,
		Region:       s.StorageRegion,
		PublicURL:    s.StoragePublicURL,
		PhotosBucket: s.PhotosBucket,
		VideosBucket: s.VideosBucket,
	}
}

// New builds the object store for the configured driver.
func New(ctx context.Context, driver string, cfg Config) (port.ObjectStore, error) {
	switch driver {
	case config.StorageDriverS3:
		s, err := NewS3Storage(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageDriverMinio, "":
		s, err := NewMinioStorage(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func (c Config) bucketFor(kind model.Kind) string {
	if kind == model.KindVideo {
		return c.VideosBucket
	}
	return c.PhotosBucket
}

func (c Config) buckets() []string {
	return []string{c.PhotosBucket, c.VideosBucket}
}

// baseEndpoint is the endpoint as a URL. A bare host gets its scheme from UseSSL.
func (c Config) baseEndpoint() string {
	if strings.Contains(c.Endpoint, "://") {
		return strings.TrimRight(c.Endpoint, "/")
	}
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + c.Endpoint
}

// publicURL joins base, bucket and key. The base falls back to the given default
// when no public URL is configured.
func (c Config) publicURL(fallback, bucket, key string) string {
	base := c.PublicURL
	if base == "" {
		base = fallback
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, key)
}

// probeDimensions reads the pixel size of an image. Anything it cannot decode
// (videos included) has no dimensions.
func probeDimensions(kind model.Kind, data []byte) *model.Dimensions {
	if kind != model.KindPhoto {
		return nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return &model.Dimensions{Width: cfg.Width, Height: cfg.Height}
}
