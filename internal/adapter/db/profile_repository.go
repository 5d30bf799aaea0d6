package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type ProfileRepository struct {
	db *sqlx.DB
}

type profileRow struct {
	ID        uint64         `db:"id"`
	FullName  string         `db:"full_name"`
	Email     sql.NullString `db:"email"`
	Role      sql.NullString `db:"role"`
	CreatedAt time.Time      `db:"created_at"`
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint64) (domain.Profile, error) {
	var row profileRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return mapProfileRow(row), nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM profiles ORDER BY id;"); err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, mapProfileRow(row))
	}
	return profiles, nil
}

func mapProfileRow(row profileRow) domain.Profile {
	return domain.Profile{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     row.Email.String,
		Role:      row.Role.String,
		CreatedAt: row.CreatedAt,
	}
}
