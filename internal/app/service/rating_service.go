package service

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type RatingService struct {
	ratings ports.RatingRepository
}

func NewRatingService(ratings ports.RatingRepository) *RatingService {
	return &RatingService{ratings: ratings}
}

var _ ports.RatingService = (*RatingService)(nil)

func (s *RatingService) CreateRating(ctx context.Context, input domain.CreateRatingInput) (domain.Rating, error) {
	if input.Score < domain.MinRatingScore || input.Score > domain.MaxRatingScore {
		return domain.Rating{}, domain.ErrInvalidScore
	}

	return s.ratings.Create(ctx, domain.Rating{
		RatedUserID: input.RatedUserID,
		PeriodType:  input.PeriodType,
		Period:      input.Period,
		Score:       input.Score,
		Remarks:     input.Remarks,
		RaterID:     input.RaterID,
	})
}

func (s *RatingService) ListRatings(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error) {
	return s.ratings.List(ctx, filter)
}

func (s *RatingService) DeleteRating(ctx context.Context, id uint64) error {
	return s.ratings.Delete(ctx, id)
}
