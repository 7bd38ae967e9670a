package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// ObjectStore implements port.ObjectStore for tests.
type ObjectStore struct {
	// stored values
	Dimensions *model.Dimensions
	GetOut     []byte

	// captured inputs
	Uploaded []port.UploadObjectInput
	Removed  []string
	GotKind  model.Kind
	GotKey   string

	// errors
	InitErr   error
	UploadErr error
	RemoveErr error
	GetErr    error

	// call flags
	InitCalled   bool
	UploadCalled bool
	RemoveCalled bool
	GetCalled    bool
}

func (m *ObjectStore) InitBuckets(ctx context.Context) error {
	m.InitCalled = true
	return m.InitErr
}

// Upload echoes the key back under https://cdn.test/.
func (m *ObjectStore) Upload(ctx context.Context, in port.UploadObjectInput) (port.StoredObject, error) {
	m.UploadCalled = true
	m.Uploaded = append(m.Uploaded, in)
	if m.UploadErr != nil {
		return port.StoredObject{}, m.UploadErr
	}
	return port.StoredObject{
		URL:        "https://cdn.test/" + in.Key,
		ExternalID: in.Key,
		Dimensions: m.Dimensions,
	}, nil
}

func (m *ObjectStore) Remove(ctx context.Context, kind model.Kind, externalID string) error {
	m.RemoveCalled = true
	m.Removed = append(m.Removed, externalID)
	return m.RemoveErr
}

func (m *ObjectStore) GetFile(ctx context.Context, kind model.Kind, externalID string) (io.ReadCloser, error) {
	m.GetCalled = true
	m.GotKind = kind
	m.GotKey = externalID
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return io.NopCloser(bytes.NewReader(m.GetOut)), nil
}
