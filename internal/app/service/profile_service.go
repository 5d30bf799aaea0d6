package service

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type ProfileService struct {
	profiles ports.ProfileRepository
}

func NewProfileService(profiles ports.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

var _ ports.ProfileService = (*ProfileService)(nil)

func (s *ProfileService) GetProfile(ctx context.Context, id uint64) (domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}
