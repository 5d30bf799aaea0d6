package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.TaskPriorityNormal
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		AssigneeIDs: req.AssigneeIDs,
		CreatedByID: req.CreatedByID,
		ProjectID:   req.ProjectID,
		Priority:    priority,
		Category:    strings.TrimSpace(req.Category),
		DueDate:     dueDate,
	}, nil
}

// BuildUpdateTaskInput derives a partial update from the request plus the raw
// JSON body, so an explicit null clears a field while an absent key leaves it
// alone.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var category *string
	if hasJSONField(raw, "category") {
		if req.Category == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Category)
		category = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	elapsedSet := hasJSONField(raw, "elapsed_minutes")
	if elapsedSet && !isJSONNull(raw["elapsed_minutes"]) && req.ElapsedMinutes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	remarkSet := hasJSONField(raw, "remark")
	if remarkSet && !isJSONNull(raw["remark"]) && req.Remark == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	projectIDSet := hasJSONField(raw, "project_id")
	if projectIDSet && !isJSONNull(raw["project_id"]) && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:             title,
		Description:       req.Description,
		DescriptionSet:    descriptionSet,
		Priority:          priority,
		Category:          category,
		DueDate:           dueDate,
		DueDateSet:        dueDateSet,
		ElapsedMinutes:    req.ElapsedMinutes,
		ElapsedMinutesSet: elapsedSet,
		Remark:            req.Remark,
		RemarkSet:         remarkSet,
		ProjectID:         req.ProjectID,
		ProjectIDSet:      projectIDSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "elapsed_minutes") ||
		hasJSONField(raw, "remark") ||
		hasJSONField(raw, "project_id")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
