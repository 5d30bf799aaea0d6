package domain

import "time"

type Meeting struct {
	ID             uint64
	Title          string
	Note           *string
	Date           time.Time
	Time           string
	CreatedByID    uint64
	ParticipantIDs []uint64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateMeetingInput struct {
	Title          string
	Note           *string
	Date           time.Time
	Time           string
	CreatedByID    uint64
	ParticipantIDs []uint64
}
