package db

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

const insertRatingQuery = `
INSERT INTO ratings (rated_user_id, period_type, period, score, remarks, rater_id)
VALUES (?, ?, ?, ?, ?, ?);
`

type RatingRepository struct {
	db *sqlx.DB
}

type ratingRow struct {
	ID          uint64         `db:"id"`
	RatedUserID uint64         `db:"rated_user_id"`
	PeriodType  string         `db:"period_type"`
	Period      string         `db:"period"`
	Score       int            `db:"score"`
	Remarks     sql.NullString `db:"remarks"`
	RaterID     uint64         `db:"rater_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

var _ ports.RatingRepository = (*RatingRepository)(nil)

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	res, err := r.db.ExecContext(ctx, insertRatingQuery,
		rating.RatedUserID,
		string(rating.PeriodType),
		rating.Period,
		rating.Score,
		nullString(rating.Remarks),
		rating.RaterID,
	)
	if err != nil {
		return domain.Rating{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Rating{}, err
	}

	var row ratingRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM ratings WHERE id = ?;", id); err != nil {
		return domain.Rating{}, err
	}
	return mapRatingRow(row), nil
}

func (r *RatingRepository) List(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error) {
	query := "SELECT * FROM ratings"
	var clauses []string
	var args []interface{}

	if filter.RatedUserID != nil {
		clauses = append(clauses, "rated_user_id = ?")
		args = append(args, *filter.RatedUserID)
	}
	if filter.PeriodType != nil {
		clauses = append(clauses, "period_type = ?")
		args = append(args, string(*filter.PeriodType))
	}
	if filter.Period != nil {
		clauses = append(clauses, "period = ?")
		args = append(args, *filter.Period)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id;"

	var rows []ratingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	ratings := make([]domain.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, mapRatingRow(row))
	}
	return ratings, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM ratings WHERE id = ?;", id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrRatingNotFound)
}

func mapRatingRow(row ratingRow) domain.Rating {
	rating := domain.Rating{
		ID:          row.ID,
		RatedUserID: row.RatedUserID,
		PeriodType:  domain.RatingPeriodType(row.PeriodType),
		Period:      row.Period,
		Score:       row.Score,
		RaterID:     row.RaterID,
		CreatedAt:   row.CreatedAt,
	}
	if row.Remarks.Valid {
		value := row.Remarks.String
		rating.Remarks = &value
	}
	return rating
}
