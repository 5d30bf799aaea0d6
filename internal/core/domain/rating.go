package domain

import "time"

type RatingPeriodType string

const (
	RatingPeriodMonthly RatingPeriodType = "monthly"
	RatingPeriodYearly  RatingPeriodType = "yearly"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating scores an employee for one period, e.g. "2024-03" or "2024".
type Rating struct {
	ID          uint64
	RatedUserID uint64
	PeriodType  RatingPeriodType
	Period      string
	Score       int
	Remarks     *string
	RaterID     uint64
	CreatedAt   time.Time
}

type CreateRatingInput struct {
	RatedUserID uint64
	PeriodType  RatingPeriodType
	Period      string
	Score       int
	Remarks     *string
	RaterID     uint64
}

type RatingFilter struct {
	RatedUserID *uint64
	PeriodType  *RatingPeriodType
	Period      *string
}
