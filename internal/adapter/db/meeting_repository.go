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

const insertMeetingQuery = `
INSERT INTO meetings (title, note, meeting_date, meeting_time, created_by_id, participant_ids)
VALUES (?, ?, ?, ?, ?, ?);
`

type MeetingRepository struct {
	db *sqlx.DB
}

type meetingRow struct {
	ID             uint64         `db:"id"`
	Title          string         `db:"title"`
	Note           sql.NullString `db:"note"`
	MeetingDate    time.Time      `db:"meeting_date"`
	MeetingTime    string         `db:"meeting_time"`
	CreatedByID    uint64         `db:"created_by_id"`
	ParticipantIDs []byte         `db:"participant_ids"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

var _ ports.MeetingRepository = (*MeetingRepository)(nil)

func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting domain.Meeting) (domain.Meeting, error) {
	participants, err := json.Marshal(meeting.ParticipantIDs)
	if err != nil {
		return domain.Meeting{}, err
	}

	res, err := r.db.ExecContext(ctx, insertMeetingQuery,
		meeting.Title,
		nullString(meeting.Note),
		meeting.Date,
		meeting.Time,
		meeting.CreatedByID,
		participants,
	)
	if err != nil {
		return domain.Meeting{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Meeting{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *MeetingRepository) GetByID(ctx context.Context, id uint64) (domain.Meeting, error) {
	var row meetingRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM meetings WHERE id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Meeting{}, domain.ErrMeetingNotFound
		}
		return domain.Meeting{}, err
	}
	return mapMeetingRow(row)
}

func (r *MeetingRepository) List(ctx context.Context) ([]domain.Meeting, error) {
	var rows []meetingRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM meetings ORDER BY meeting_date, id;"); err != nil {
		return nil, err
	}

	meetings := make([]domain.Meeting, 0, len(rows))
	for _, row := range rows {
		meeting, err := mapMeetingRow(row)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?;", id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrMeetingNotFound)
}

func mapMeetingRow(row meetingRow) (domain.Meeting, error) {
	meeting := domain.Meeting{
		ID:          row.ID,
		Title:       row.Title,
		Date:        row.MeetingDate,
		Time:        row.MeetingTime,
		CreatedByID: row.CreatedByID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if len(row.ParticipantIDs) > 0 {
		if err := json.Unmarshal(row.ParticipantIDs, &meeting.ParticipantIDs); err != nil {
			return domain.Meeting{}, err
		}
	}
	if row.Note.Valid {
		value := row.Note.String
		meeting.Note = &value
	}

	return meeting, nil
}
