package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	client := strings.TrimSpace(req.ClientName)
	if name == "" || client == "" {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return domain.CreateProjectInput{}, ErrInvalidProjectPayload
		}
		endDate = &parsed
	}

	return domain.CreateProjectInput{
		Name:        name,
		ClientName:  client,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
		Stages:      req.Stages,
	}, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	var name *string
	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		name = &value
	}

	var clientName *string
	if hasJSONField(raw, "client_name") {
		if req.ClientName == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.ClientName)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		clientName = &value
	}

	var startDate *time.Time
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		startDate = &parsed
	}

	var endDate *time.Time
	endDateSet := hasJSONField(raw, "end_date")
	if endDateSet && !isJSONNull(raw["end_date"]) {
		if req.EndDate == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		endDate = &parsed
	}

	var status *domain.ProjectStatus
	if req.Status != nil {
		value := domain.ProjectStatus(*req.Status)
		status = &value
	}

	return domain.UpdateProjectInput{
		Name:        name,
		ClientName:  clientName,
		StartDate:   startDate,
		EndDate:     endDate,
		EndDateSet:  endDateSet,
		Description: req.Description,
		Status:      status,
	}, nil
}
