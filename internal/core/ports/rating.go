package ports

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type RatingRepository interface {
	Create(ctx context.Context, rating domain.Rating) (domain.Rating, error)
	List(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error)
	Delete(ctx context.Context, id uint64) error
}

type RatingService interface {
	CreateRating(ctx context.Context, input domain.CreateRatingInput) (domain.Rating, error)
	ListRatings(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error)
	DeleteRating(ctx context.Context, id uint64) error
}
