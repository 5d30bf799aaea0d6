package service

import (
	"context"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type TaskService struct {
	tasks  ports.TaskRepository
	policy domain.ArchivePolicy
	now    func() time.Time
}

func NewTaskService(tasks ports.TaskRepository, policy domain.ArchivePolicy) *TaskService {
	return &TaskService{tasks: tasks, policy: policy, now: time.Now}
}

var _ ports.TaskService = (*TaskService)(nil)

// CreateTasks creates one task per assignee so every employee tracks their own
// copy through the lifecycle.
func (s *TaskService) CreateTasks(ctx context.Context, input domain.CreateTaskInput) ([]domain.Task, error) {
	if len(input.AssigneeIDs) == 0 {
		return nil, domain.ErrNoAssignees
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityNormal
	}

	created := make([]domain.Task, 0, len(input.AssigneeIDs))
	for _, assigneeID := range input.AssigneeIDs {
		task, err := s.tasks.Create(ctx, domain.Task{
			Title:       input.Title,
			Description: input.Description,
			AssigneeID:  assigneeID,
			CreatedByID: input.CreatedByID,
			ProjectID:   input.ProjectID,
			Status:      domain.TaskStatusNotStarted,
			Priority:    priority,
			Category:    input.Category,
			DueDate:     input.DueDate,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, task)
	}

	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter, archivedView bool) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if s.policy.Archived(task, now) == archivedView {
			visible = append(visible, task)
		}
	}
	return visible, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.ElapsedMinutesSet {
		task.ElapsedMinutes = input.ElapsedMinutes
	}
	if input.RemarkSet {
		task.Remark = input.Remark
	}
	if input.ProjectIDSet {
		task.ProjectID = input.ProjectID
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateStatus validates the lifecycle move before anything is written, so a
// denied transition leaves the stored row untouched.
func (s *TaskService) UpdateStatus(ctx context.Context, id uint64, to domain.TaskStatus) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := domain.TransitionTask(&task, to, s.now()); err != nil {
		return domain.Task{}, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) SetArchived(ctx context.Context, id uint64, archived *bool) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	task.ArchivedOverride = archived
	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.tasks.Delete(ctx, id)
}
