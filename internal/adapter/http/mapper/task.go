package mapper

import (
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:               task.ID,
		Title:            task.Title,
		AssigneeID:       task.AssigneeID,
		CreatedByID:      task.CreatedByID,
		Status:           string(task.Status),
		Priority:         string(task.Priority),
		Category:         task.Category,
		ElapsedMinutes:   task.ElapsedMinutes,
		ArchivedOverride: task.ArchivedOverride,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.ProjectID != nil {
		value := *task.ProjectID
		item.ProjectID = &value
	}
	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}
	if task.Remark != nil {
		value := *task.Remark
		item.Remark = &value
	}

	return item
}
