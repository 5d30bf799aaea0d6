package mapper

import (
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToMeetingItems(meetings []domain.Meeting) []dto.MeetingItem {
	items := make([]dto.MeetingItem, 0, len(meetings))
	for _, meeting := range meetings {
		items = append(items, ToMeetingItem(meeting))
	}
	return items
}

func ToMeetingItem(meeting domain.Meeting) dto.MeetingItem {
	item := dto.MeetingItem{
		ID:             meeting.ID,
		Title:          meeting.Title,
		Date:           meeting.Date.Format("2006-01-02"),
		Time:           meeting.Time,
		CreatedByID:    meeting.CreatedByID,
		ParticipantIDs: meeting.ParticipantIDs,
		CreatedAt:      meeting.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      meeting.UpdatedAt.Format(time.RFC3339),
	}

	if meeting.Note != nil {
		value := *meeting.Note
		item.Note = &value
	}

	return item
}
