package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks
  (title, description, assignee_id, created_by_id, project_id, status, priority,
   category, due_date, completed_at, elapsed_minutes, remark, archived_override)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const getTaskQuery = `SELECT * FROM tasks WHERE id = ?;`

const updateTaskQuery = `
UPDATE tasks SET
  title = ?, description = ?, assignee_id = ?, created_by_id = ?, project_id = ?,
  status = ?, priority = ?, category = ?, due_date = ?, completed_at = ?,
  elapsed_minutes = ?, remark = ?, archived_override = ?
WHERE id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID               sql.NullInt64  `db:"id"`
	Title            string         `db:"title"`
	Description      sql.NullString `db:"description"`
	AssigneeID       uint64         `db:"assignee_id"`
	CreatedByID      uint64         `db:"created_by_id"`
	ProjectID        sql.NullInt64  `db:"project_id"`
	Status           string         `db:"status"`
	Priority         string         `db:"priority"`
	Category         string         `db:"category"`
	DueDate          sql.NullTime   `db:"due_date"`
	CompletedAt      sql.NullTime   `db:"completed_at"`
	ElapsedMinutes   sql.NullInt64  `db:"elapsed_minutes"`
	Remark           sql.NullString `db:"remark"`
	ArchivedOverride sql.NullBool   `db:"archived_override"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.Title,
		nullString(task.Description),
		task.AssigneeID,
		task.CreatedByID,
		nullID(task.ProjectID),
		string(task.Status),
		string(task.Priority),
		task.Category,
		nullTime(task.DueDate),
		nullTime(task.CompletedAt),
		nullInt(task.ElapsedMinutes),
		nullString(task.Remark),
		nullBool(task.ArchivedOverride),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := "SELECT * FROM tasks"
	var clauses []string
	var args []interface{}

	if filter.AssigneeID != nil {
		clauses = append(clauses, "assignee_id = ?")
		args = append(args, *filter.AssigneeID)
	}
	if filter.ProjectID != nil {
		clauses = append(clauses, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Category != nil {
		clauses = append(clauses, "category = ?")
		args = append(args, *filter.Category)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM tasks WHERE created_at >= ? AND created_at < ? ORDER BY id;", from, to)
	if err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	// MySQL reports zero affected rows for no-op updates, so existence is the
	// caller's concern; only exec errors surface here.
	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		task.Title,
		nullString(task.Description),
		task.AssigneeID,
		task.CreatedByID,
		nullID(task.ProjectID),
		string(task.Status),
		string(task.Priority),
		task.Category,
		nullTime(task.DueDate),
		nullTime(task.CompletedAt),
		nullInt(task.ElapsedMinutes),
		nullString(task.Remark),
		nullBool(task.ArchivedOverride),
		task.ID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?;", id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrTaskNotFound)
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:          uint64(row.ID.Int64),
		Title:       row.Title,
		AssigneeID:  row.AssigneeID,
		CreatedByID: row.CreatedByID,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		Category:    row.Category,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		task.ProjectID = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	if row.ElapsedMinutes.Valid {
		value := int(row.ElapsedMinutes.Int64)
		task.ElapsedMinutes = &value
	}
	if row.Remark.Valid {
		value := row.Remark.String
		task.Remark = &value
	}
	if row.ArchivedOverride.Valid {
		value := row.ArchivedOverride.Bool
		task.ArchivedOverride = &value
	}

	return task
}
