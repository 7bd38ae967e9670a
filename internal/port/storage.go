package port

import (
	"context"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// UploadObjectInput is a file handed to the object store. Kind selects the
// bucket, Key is the object name inside it.
type UploadObjectInput struct {
	Kind        model.Kind
	Key         string
	ContentType string
	Data        []byte
}

// StoredObject is what the store reports back after an upload.
type StoredObject struct {
	URL        string
	ExternalID string
	Dimensions *model.Dimensions
}

// ObjectStore is the external media store.
type ObjectStore interface {
	InitBuckets(ctx context.Context) error
	Upload(ctx context.Context, in UploadObjectInput) (StoredObject, error)
	Remove(ctx context.Context, kind model.Kind, externalID string) error
	GetFile(ctx context.Context, kind model.Kind, externalID string) (io.ReadCloser, error)
}
