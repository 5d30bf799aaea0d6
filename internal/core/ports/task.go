package ports

import (
	"context"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	CreateTasks(ctx context.Context, input domain.CreateTaskInput) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	// ListTasks returns the default (visible) view, or only archived tasks
	// when archivedView is set.
	ListTasks(ctx context.Context, filter domain.TaskFilter, archivedView bool) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateStatus(ctx context.Context, id uint64, to domain.TaskStatus) (domain.Task, error)
	// SetArchived records a manual archive/unarchive override; nil restores
	// the automatic archival rule.
	SetArchived(ctx context.Context, id uint64, archived *bool) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
