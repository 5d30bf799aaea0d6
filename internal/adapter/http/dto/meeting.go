package dto

type MeetingItem struct {
	ID             uint64   `json:"id"`
	Title          string   `json:"title"`
	Note           *string  `json:"note,omitempty"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	CreatedByID    uint64   `json:"created_by_id"`
	ParticipantIDs []uint64 `json:"participant_ids"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type CreateMeetingRequest struct {
	Title          string   `json:"title" binding:"required,max=255"`
	Note           *string  `json:"note" binding:"omitempty,max=65535"`
	Date           string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time           string   `json:"time" binding:"required,datetime=15:04"`
	CreatedByID    uint64   `json:"created_by_id" binding:"required,gt=0"`
	ParticipantIDs []uint64 `json:"participant_ids" binding:"required,min=1,dive,gt=0"`
}
