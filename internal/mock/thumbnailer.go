package mock

import (
	"io"
)

// Thumbnailer implements port.Thumbnailer for tests.
type Thumbnailer struct {
	Out    []byte
	Err    error
	Called bool
	Input  []byte
}

func (m *Thumbnailer) Thumbnail(r io.Reader) ([]byte, error) {
	m.Called = true
	m.Input, _ = io.ReadAll(r)
	return m.Out, m.Err
}
