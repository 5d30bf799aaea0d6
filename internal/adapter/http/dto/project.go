package dto

type ProjectItem struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	ClientName   string   `json:"client_name"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Status       string   `json:"status"`
	Stages       []string `json:"stages"`
	CurrentStage int      `json:"current_stage"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	ClientName  string   `json:"client_name" binding:"required,max=255"`
	StartDate   string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Stages      []string `json:"stages" binding:"omitempty,dive,required,max=100"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	ClientName  *string `json:"client_name" binding:"omitempty,max=255"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed on_hold cancelled"`
}

type UpdateProjectStagesRequest struct {
	Stages       []string `json:"stages" binding:"required,min=1,dive,required,max=100"`
	CurrentStage int      `json:"current_stage" binding:"gte=0"`
}
