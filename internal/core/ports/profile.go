package ports

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uint64) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, id uint64) (domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
}
