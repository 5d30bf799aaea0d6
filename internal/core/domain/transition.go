package domain

import (
	"fmt"
	"time"
)

// taskTransitions lists the allowed lifecycle moves. Any pair missing here is
// denied, including every self transition and completed -> not_started.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusNotStarted: {TaskStatusInProgress, TaskStatusOnHold},
	TaskStatusInProgress: {TaskStatusCompleted, TaskStatusOnHold, TaskStatusNotStarted},
	TaskStatusOnHold:     {TaskStatusInProgress, TaskStatusNotStarted},
	TaskStatusCompleted:  {TaskStatusInProgress},
}

type InvalidTransitionError struct {
	From TaskStatus
	To   TaskStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

func CanTransition(from, to TaskStatus) bool {
	for _, allowed := range taskTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTask moves a task to the requested status, keeping the completion
// timestamp consistent: set when entering completed, cleared when leaving it.
// On a denied transition the task is left untouched.
func TransitionTask(task *Task, to TaskStatus, now time.Time) error {
	if !CanTransition(task.Status, to) {
		return InvalidTransitionError{From: task.Status, To: to}
	}

	from := task.Status
	task.Status = to

	switch {
	case to == TaskStatusCompleted:
		completedAt := now
		task.CompletedAt = &completedAt
	case from == TaskStatusCompleted:
		task.CompletedAt = nil
	}

	return nil
}
