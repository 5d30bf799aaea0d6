package dto

type TaskItem struct {
	ID               uint64  `json:"id"`
	Title            string  `json:"title"`
	Description      *string `json:"description,omitempty"`
	AssigneeID       uint64  `json:"assignee_id"`
	CreatedByID      uint64  `json:"created_by_id"`
	ProjectID        *uint64 `json:"project_id,omitempty"`
	Status           string  `json:"status"`
	Priority         string  `json:"priority"`
	Category         string  `json:"category,omitempty"`
	DueDate          *string `json:"due_date,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	ElapsedMinutes   *int    `json:"elapsed_minutes,omitempty"`
	Remark           *string `json:"remark,omitempty"`
	ArchivedOverride *bool   `json:"archived_override,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	AssigneeIDs []uint64 `json:"assignee_ids" binding:"required,min=1,dive,gt=0"`
	CreatedByID uint64   `json:"created_by_id" binding:"required,gt=0"`
	ProjectID   *uint64  `json:"project_id" binding:"omitempty,gt=0"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=normal high emergency"`
	Category    string   `json:"category" binding:"omitempty,max=100"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	Priority       *string `json:"priority" binding:"omitempty,oneof=normal high emergency"`
	Category       *string `json:"category" binding:"omitempty,max=100"`
	DueDate        *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ElapsedMinutes *int    `json:"elapsed_minutes" binding:"omitempty,gte=0"`
	Remark         *string `json:"remark" binding:"omitempty,max=65535"`
	ProjectID      *uint64 `json:"project_id" binding:"omitempty,gt=0"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=not_started in_progress completed on_hold"`
}

type SetTaskArchivedRequest struct {
	// Archived true/false records a manual override; null restores the
	// automatic archival rule.
	Archived *bool `json:"archived"`
}
