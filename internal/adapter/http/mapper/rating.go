package mapper

import (
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToRatingItems(ratings []domain.Rating) []dto.RatingItem {
	items := make([]dto.RatingItem, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, ToRatingItem(rating))
	}
	return items
}

func ToRatingItem(rating domain.Rating) dto.RatingItem {
	item := dto.RatingItem{
		ID:          rating.ID,
		RatedUserID: rating.RatedUserID,
		PeriodType:  string(rating.PeriodType),
		Period:      rating.Period,
		Score:       rating.Score,
		RaterID:     rating.RaterID,
		CreatedAt:   rating.CreatedAt.Format(time.RFC3339),
	}

	if rating.Remarks != nil {
		value := *rating.Remarks
		item.Remarks = &value
	}

	return item
}
