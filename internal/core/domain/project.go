package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID          uint64
	Name        string
	ClientName  string
	StartDate   time.Time
	EndDate     *time.Time
	Description *string
	Status      ProjectStatus
	// Stages is the ordered delivery pipeline; CurrentStage indexes into it.
	// Directors can reshape the pipeline per project.
	Stages       []string
	CurrentStage int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateProjectInput struct {
	Name        string
	ClientName  string
	StartDate   time.Time
	EndDate     *time.Time
	Description *string
	Stages      []string
}

type UpdateProjectInput struct {
	Name        *string
	ClientName  *string
	StartDate   *time.Time
	EndDate     *time.Time
	EndDateSet  bool
	Description *string
	Status      *ProjectStatus
}
