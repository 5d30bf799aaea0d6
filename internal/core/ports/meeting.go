package ports

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting domain.Meeting) (domain.Meeting, error)
	GetByID(ctx context.Context, id uint64) (domain.Meeting, error)
	List(ctx context.Context) ([]domain.Meeting, error)
	Delete(ctx context.Context, id uint64) error
}

type MeetingService interface {
	CreateMeeting(ctx context.Context, input domain.CreateMeetingInput) (domain.Meeting, error)
	GetMeeting(ctx context.Context, id uint64) (domain.Meeting, error)
	ListMeetings(ctx context.Context) ([]domain.Meeting, error)
	DeleteMeeting(ctx context.Context, id uint64) error
}
