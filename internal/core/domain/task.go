package domain

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOnHold     TaskStatus = "on_hold"
)

type TaskPriority string

const (
	TaskPriorityNormal    TaskPriority = "normal"
	TaskPriorityHigh      TaskPriority = "high"
	TaskPriorityEmergency TaskPriority = "emergency"
)

type Task struct {
	ID             uint64
	Title          string
	Description    *string
	AssigneeID     uint64
	CreatedByID    uint64
	ProjectID      *uint64
	Status         TaskStatus
	Priority       TaskPriority
	Category       string
	DueDate        *time.Time
	CompletedAt    *time.Time
	ElapsedMinutes *int
	Remark         *string
	// ArchivedOverride records a manual archive/unarchive action. It wins
	// over the automatic archival rule in both directions; nil means the
	// automatic rule applies.
	ArchivedOverride *bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateTaskInput fans out to one task row per assignee.
type CreateTaskInput struct {
	Title       string
	Description *string
	AssigneeIDs []uint64
	CreatedByID uint64
	ProjectID   *uint64
	Priority    TaskPriority
	Category    string
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title             *string
	Description       *string
	DescriptionSet    bool
	Priority          *TaskPriority
	Category          *string
	DueDate           *time.Time
	DueDateSet        bool
	ElapsedMinutes    *int
	ElapsedMinutesSet bool
	Remark            *string
	RemarkSet         bool
	ProjectID         *uint64
	ProjectIDSet      bool
}

type TaskFilter struct {
	AssigneeID *uint64
	ProjectID  *uint64
	Status     *TaskStatus
	Category   *string
}
