package ports

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	GetByID(ctx context.Context, id uint64) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id uint64) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error)
	// UpdateStages replaces the stage pipeline and repositions the current
	// stage pointer.
	UpdateStages(ctx context.Context, id uint64, stages []string, currentStage int) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint64) error
}
