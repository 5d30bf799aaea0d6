package service

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

// defaultStages seeds new projects with the house delivery pipeline until a
// director reshapes it.
var defaultStages = []string{"Kickoff", "Design", "Build", "Review", "Delivery"}

type ProjectService struct {
	projects ports.ProjectRepository
}

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

var _ ports.ProjectService = (*ProjectService)(nil)

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	stages := input.Stages
	if len(stages) == 0 {
		stages = append([]string(nil), defaultStages...)
	}

	return s.projects.Create(ctx, domain.Project{
		Name:         input.Name,
		ClientName:   input.ClientName,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Description:  input.Description,
		Status:       domain.ProjectStatusActive,
		Stages:       stages,
		CurrentStage: 0,
	})
}

func (s *ProjectService) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.ClientName != nil {
		project.ClientName = *input.ClientName
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDateSet {
		project.EndDate = input.EndDate
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) UpdateStages(ctx context.Context, id uint64, stages []string, currentStage int) (domain.Project, error) {
	if len(stages) == 0 || currentStage < 0 || currentStage >= len(stages) {
		return domain.Project{}, domain.ErrInvalidStage
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	project.Stages = stages
	project.CurrentStage = currentStage
	if err := s.projects.Update(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	return s.projects.Delete(ctx, id)
}
