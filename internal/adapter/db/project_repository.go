package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

const insertProjectQuery = `
INSERT INTO projects
  (name, client_name, start_date, end_date, description, status, stages, current_stage)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const updateProjectQuery = `
UPDATE projects SET
  name = ?, client_name = ?, start_date = ?, end_date = ?, description = ?,
  status = ?, stages = ?, current_stage = ?
WHERE id = ?;
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID           uint64         `db:"id"`
	Name         string         `db:"name"`
	ClientName   string         `db:"client_name"`
	StartDate    time.Time      `db:"start_date"`
	EndDate      sql.NullTime   `db:"end_date"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	Stages       []byte         `db:"stages"`
	CurrentStage int            `db:"current_stage"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	stages, err := json.Marshal(project.Stages)
	if err != nil {
		return domain.Project{}, err
	}

	res, err := r.db.ExecContext(ctx, insertProjectQuery,
		project.Name,
		project.ClientName,
		project.StartDate,
		nullTime(project.EndDate),
		nullString(project.Description),
		string(project.Status),
		stages,
		project.CurrentStage,
	)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM projects WHERE id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return mapProjectRow(row)
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM projects ORDER BY id;"); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		project, err := mapProjectRow(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) error {
	stages, err := json.Marshal(project.Stages)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, updateProjectQuery,
		project.Name,
		project.ClientName,
		project.StartDate,
		nullTime(project.EndDate),
		nullString(project.Description),
		string(project.Status),
		stages,
		project.CurrentStage,
		project.ID,
	)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?;", id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrProjectNotFound)
}

func mapProjectRow(row projectRow) (domain.Project, error) {
	project := domain.Project{
		ID:           row.ID,
		Name:         row.Name,
		ClientName:   row.ClientName,
		StartDate:    row.StartDate,
		Status:       domain.ProjectStatus(row.Status),
		CurrentStage: row.CurrentStage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if len(row.Stages) > 0 {
		if err := json.Unmarshal(row.Stages, &project.Stages); err != nil {
			return domain.Project{}, err
		}
	}
	if row.EndDate.Valid {
		value := row.EndDate.Time
		project.EndDate = &value
	}
	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project, nil
}
