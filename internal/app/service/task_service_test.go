package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func TestTaskService_CreateTasks_FansOutPerAssignee(t *testing.T) {
	repo := new(taskRepoMock)
	svc := NewTaskService(repo, domain.ArchivePolicy{})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Status == domain.TaskStatusNotStarted && task.Priority == domain.TaskPriorityNormal
	})).Return(domain.Task{ID: 1}, nil).Times(3)

	created, err := svc.CreateTasks(context.Background(), domain.CreateTaskInput{
		Title:       "Prepare quarterly review",
		AssigneeIDs: []uint64{4, 5, 6},
		CreatedByID: 1,
		Category:    "admin",
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTasks_RequiresAssignees(t *testing.T) {
	repo := new(taskRepoMock)
	svc := NewTaskService(repo, domain.ArchivePolicy{})

	_, err := svc.CreateTasks(context.Background(), domain.CreateTaskInput{Title: "orphan"})
	require.ErrorIs(t, err, domain.ErrNoAssignees)
	repo.AssertNotCalled(t, "Create")
}

func TestTaskService_ListTasks_SplitsArchivedView(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	oldCompletion := now.AddDate(0, 0, -10)
	freshCompletion := now.AddDate(0, 0, -1)

	tasks := []domain.Task{
		{ID: 1, Status: domain.TaskStatusInProgress},
		{ID: 2, Status: domain.TaskStatusCompleted, CompletedAt: &oldCompletion},
		{ID: 3, Status: domain.TaskStatusCompleted, CompletedAt: &freshCompletion},
	}

	repo := new(taskRepoMock)
	repo.On("List", mock.Anything, domain.TaskFilter{}).Return(tasks, nil).Twice()

	svc := NewTaskService(repo, domain.ArchivePolicy{Enabled: true, Delay: 7 * 24 * time.Hour})
	svc.now = func() time.Time { return now }

	visible, err := svc.ListTasks(context.Background(), domain.TaskFilter{}, false)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	require.Equal(t, uint64(1), visible[0].ID)
	require.Equal(t, uint64(3), visible[1].ID)

	archived, err := svc.ListTasks(context.Background(), domain.TaskFilter{}, true)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.Equal(t, uint64(2), archived[0].ID)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateStatus_ValidTransition(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := new(taskRepoMock)
	repo.On("GetByID", mock.Anything, uint64(7)).
		Return(domain.Task{ID: 7, Status: domain.TaskStatusInProgress}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Status == domain.TaskStatusCompleted && task.CompletedAt != nil && task.CompletedAt.Equal(now)
	})).Return(nil).Once()

	svc := NewTaskService(repo, domain.ArchivePolicy{})
	svc.now = func() time.Time { return now }

	task, err := svc.UpdateStatus(context.Background(), 7, domain.TaskStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, task.Status)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateStatus_DeniedTransitionWritesNothing(t *testing.T) {
	repo := new(taskRepoMock)
	repo.On("GetByID", mock.Anything, uint64(7)).
		Return(domain.Task{ID: 7, Status: domain.TaskStatusNotStarted}, nil).Once()

	svc := NewTaskService(repo, domain.ArchivePolicy{})

	_, err := svc.UpdateStatus(context.Background(), 7, domain.TaskStatusCompleted)

	var transitionErr domain.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	repo.AssertNotCalled(t, "Update")
}

func TestTaskService_SetArchived_PersistsOverride(t *testing.T) {
	archived := true

	repo := new(taskRepoMock)
	repo.On("GetByID", mock.Anything, uint64(2)).
		Return(domain.Task{ID: 2, Status: domain.TaskStatusOnHold}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.ArchivedOverride != nil && *task.ArchivedOverride
	})).Return(nil).Once()

	svc := NewTaskService(repo, domain.ArchivePolicy{})

	task, err := svc.SetArchived(context.Background(), 2, &archived)
	require.NoError(t, err)
	require.NotNil(t, task.ArchivedOverride)
	require.True(t, *task.ArchivedOverride)
	repo.AssertExpectations(t)
}
