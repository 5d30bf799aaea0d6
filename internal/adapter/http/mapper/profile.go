package mapper

import (
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToProfileItems(profiles []domain.Profile) []dto.ProfileItem {
	items := make([]dto.ProfileItem, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, ToProfileItem(profile))
	}
	return items
}

func ToProfileItem(profile domain.Profile) dto.ProfileItem {
	return dto.ProfileItem{
		ID:       profile.ID,
		FullName: profile.FullName,
		Email:    profile.Email,
		Role:     profile.Role,
	}
}
