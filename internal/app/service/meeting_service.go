package service

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type MeetingService struct {
	meetings ports.MeetingRepository
}

func NewMeetingService(meetings ports.MeetingRepository) *MeetingService {
	return &MeetingService{meetings: meetings}
}

var _ ports.MeetingService = (*MeetingService)(nil)

func (s *MeetingService) CreateMeeting(ctx context.Context, input domain.CreateMeetingInput) (domain.Meeting, error) {
	return s.meetings.Create(ctx, domain.Meeting{
		Title:          input.Title,
		Note:           input.Note,
		Date:           input.Date,
		Time:           input.Time,
		CreatedByID:    input.CreatedByID,
		ParticipantIDs: input.ParticipantIDs,
	})
}

func (s *MeetingService) GetMeeting(ctx context.Context, id uint64) (domain.Meeting, error) {
	return s.meetings.GetByID(ctx, id)
}

func (s *MeetingService) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	return s.meetings.List(ctx)
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id uint64) error {
	return s.meetings.Delete(ctx, id)
}
