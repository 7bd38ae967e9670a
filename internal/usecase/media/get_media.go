package media

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type mediaGetterSrv struct {
	repo port.MediaRepository
}

// compile-time check: *mediaGetterSrv must satisfy port.MediaGetter
var _ port.MediaGetter = (*mediaGetterSrv)(nil)

func NewMediaGetter(repo port.MediaRepository) port.MediaGetter {
	return &mediaGetterSrv{repo}
}

// GetMedia returns the media whether it is active or not.
func (s *mediaGetterSrv) GetMedia(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	return media, nil
}
