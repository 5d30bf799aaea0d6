package dto

type RatingItem struct {
	ID          uint64  `json:"id"`
	RatedUserID uint64  `json:"rated_user_id"`
	PeriodType  string  `json:"period_type"`
	Period      string  `json:"period"`
	Score       int     `json:"score"`
	Remarks     *string `json:"remarks,omitempty"`
	RaterID     uint64  `json:"rater_id"`
	CreatedAt   string  `json:"created_at"`
}

type CreateRatingRequest struct {
	RatedUserID uint64  `json:"rated_user_id" binding:"required,gt=0"`
	PeriodType  string  `json:"period_type" binding:"required,oneof=monthly yearly"`
	Period      string  `json:"period" binding:"required,max=10"`
	Score       int     `json:"score" binding:"required,gte=1,lte=5"`
	Remarks     *string `json:"remarks" binding:"omitempty,max=65535"`
	RaterID     uint64  `json:"rater_id" binding:"required,gt=0"`
}
