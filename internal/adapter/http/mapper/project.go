package mapper

import (
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:           project.ID,
		Name:         project.Name,
		ClientName:   project.ClientName,
		StartDate:    project.StartDate.Format("2006-01-02"),
		Status:       string(project.Status),
		Stages:       project.Stages,
		CurrentStage: project.CurrentStage,
		CreatedAt:    project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    project.UpdatedAt.Format(time.RFC3339),
	}

	if project.EndDate != nil {
		value := project.EndDate.Format("2006-01-02")
		item.EndDate = &value
	}
	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	return item
}
