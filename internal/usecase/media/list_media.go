package media

import (
	"context"
	"math"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

type mediaListerSrv struct {
	repo port.MediaRepository
}

// compile-time check: *mediaListerSrv must satisfy port.MediaLister
var _ port.MediaLister = (*mediaListerSrv)(nil)

func NewMediaLister(repo port.MediaRepository) port.MediaLister {
	return &mediaListerSrv{repo: repo}
}

type listFilters struct {
	Kind     model.Kind     `json:"type" validate:"omitempty,oneof=photo video"`
	Category model.Category `json:"category" validate:"omitempty,oneof=Portrait Lifestyle Fashion Style Moments Beauty Elegance Grace Living Events"`
}

// ListMedia pages through active medias. A zero page or limit takes the
// default; negative values are rejected and the limit is capped.
func (s *mediaListerSrv) ListMedia(ctx context.Context, in port.ListMediaInput) (*port.ListMediaOutput, error) {
	page, limit := in.Page, in.Limit
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		return nil, apperror.Validation("page must be a positive integer")
	}
	if limit < 1 {
		return nil, apperror.Validation("limit must be a positive integer")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page > math.MaxInt/limit {
		return nil, apperror.Validation("page is out of range")
	}
	if err := validation.Check(listFilters{Kind: in.Kind, Category: in.Category}); err != nil {
		return nil, err
	}

	medias, total, err := s.repo.List(ctx, port.MediaFilter{
		Kind:         in.Kind,
		Category:     in.Category,
		FeaturedOnly: in.FeaturedOnly,
		Search:       in.Search,
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		logger.Errorf(ctx, "failed to list medias: %v", err)
		return nil, apperror.Persistence(err)
	}
	if medias == nil {
		medias = []*model.Media{}
	}

	return &port.ListMediaOutput{
		Media:       medias,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
		Total:       total,
	}, nil
}
