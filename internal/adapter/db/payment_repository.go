package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

const insertPaymentQuery = `
INSERT INTO payments
  (client_name, project_id, invoice_amount, amount_paid, invoice_date, due_date,
   responsible_id, remarks)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const getPaymentQuery = `SELECT * FROM payments WHERE id = ?;`

const updatePaymentQuery = `
UPDATE payments SET
  client_name = ?, project_id = ?, invoice_amount = ?, amount_paid = ?,
  invoice_date = ?, due_date = ?, responsible_id = ?, remarks = ?
WHERE id = ?;
`

// reminderColumns maps a reminder kind to its sent-at column. The column name
// is interpolated into the claim query, so kinds outside this map are refused.
var reminderColumns = map[domain.ReminderKind]string{
	domain.ReminderKindCustom:  "custom_reminder_sent_at",
	domain.ReminderKind24Hour:  "reminder_24h_sent_at",
	domain.ReminderKindOverdue: "overdue_reminder_sent_at",
}

type PaymentRepository struct {
	db *sqlx.DB
}

type paymentRow struct {
	ID                    uint64         `db:"id"`
	ClientName            string         `db:"client_name"`
	ProjectID             sql.NullInt64  `db:"project_id"`
	InvoiceAmount         float64        `db:"invoice_amount"`
	AmountPaid            float64        `db:"amount_paid"`
	InvoiceDate           time.Time      `db:"invoice_date"`
	DueDate               time.Time      `db:"due_date"`
	ResponsibleID         uint64         `db:"responsible_id"`
	Remarks               sql.NullString `db:"remarks"`
	CustomReminderSentAt  sql.NullTime   `db:"custom_reminder_sent_at"`
	Reminder24hSentAt     sql.NullTime   `db:"reminder_24h_sent_at"`
	OverdueReminderSentAt sql.NullTime   `db:"overdue_reminder_sent_at"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

var _ ports.PaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	res, err := r.db.ExecContext(ctx, insertPaymentQuery,
		payment.ClientName,
		nullID(payment.ProjectID),
		payment.InvoiceAmount,
		payment.AmountPaid,
		payment.InvoiceDate,
		payment.DueDate,
		payment.ResponsibleID,
		nullString(payment.Remarks),
	)
	if err != nil {
		return domain.Payment{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Payment{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (domain.Payment, error) {
	var row paymentRow
	if err := r.db.GetContext(ctx, &row, getPaymentQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, domain.ErrPaymentNotFound
		}
		return domain.Payment{}, err
	}
	return mapPaymentRow(row), nil
}

func (r *PaymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	query := "SELECT * FROM payments"
	var clauses []string
	var args []interface{}

	if filter.ProjectID != nil {
		clauses = append(clauses, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.ResponsibleID != nil {
		clauses = append(clauses, "responsible_id = ?")
		args = append(args, *filter.ResponsibleID)
	}
	if filter.Status != nil {
		// Status is derived from the two amounts, so the filter translates to
		// an amount comparison instead of a stored column.
		switch *filter.Status {
		case domain.PaymentStatusPending:
			clauses = append(clauses, "amount_paid <= 0")
		case domain.PaymentStatusPartiallyPaid:
			clauses = append(clauses, "amount_paid > 0 AND amount_paid < invoice_amount")
		case domain.PaymentStatusPaid:
			clauses = append(clauses, "amount_paid >= invoice_amount")
		}
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id;"

	var rows []paymentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return mapPaymentRows(rows), nil
}

func (r *PaymentRepository) ListUnpaid(ctx context.Context) ([]domain.Payment, error) {
	var rows []paymentRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM payments WHERE amount_paid < invoice_amount ORDER BY due_date, id;")
	if err != nil {
		return nil, err
	}
	return mapPaymentRows(rows), nil
}

func (r *PaymentRepository) ListInvoicedBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	var rows []paymentRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM payments WHERE invoice_date >= ? AND invoice_date < ? ORDER BY id;", from, to)
	if err != nil {
		return nil, err
	}
	return mapPaymentRows(rows), nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment domain.Payment) error {
	_, err := r.db.ExecContext(ctx, updatePaymentQuery,
		payment.ClientName,
		nullID(payment.ProjectID),
		payment.InvoiceAmount,
		payment.AmountPaid,
		payment.InvoiceDate,
		payment.DueDate,
		payment.ResponsibleID,
		nullString(payment.Remarks),
		payment.ID,
	)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?;", id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrPaymentNotFound)
}

// ClaimReminder stamps the sent-at column for one reminder kind. Without
// force the WHERE clause requires the column to still be NULL, so of two
// overlapping batch runs only one sees an affected row.
func (r *PaymentRepository) ClaimReminder(ctx context.Context, id uint64, kind domain.ReminderKind, at time.Time, force bool) (bool, error) {
	column, ok := reminderColumns[kind]
	if !ok {
		return false, fmt.Errorf("unknown reminder kind %q", kind)
	}

	query := fmt.Sprintf("UPDATE payments SET %s = ? WHERE id = ?", column)
	if !force {
		query += fmt.Sprintf(" AND %s IS NULL", column)
	}

	res, err := r.db.ExecContext(ctx, query+";", at, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func mapPaymentRows(rows []paymentRow) []domain.Payment {
	payments := make([]domain.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, mapPaymentRow(row))
	}
	return payments
}

func mapPaymentRow(row paymentRow) domain.Payment {
	payment := domain.Payment{
		ID:            row.ID,
		ClientName:    row.ClientName,
		InvoiceAmount: row.InvoiceAmount,
		AmountPaid:    row.AmountPaid,
		InvoiceDate:   row.InvoiceDate,
		DueDate:       row.DueDate,
		ResponsibleID: row.ResponsibleID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		payment.ProjectID = &value
	}
	if row.Remarks.Valid {
		value := row.Remarks.String
		payment.Remarks = &value
	}
	if row.CustomReminderSentAt.Valid {
		value := row.CustomReminderSentAt.Time
		payment.CustomReminderSentAt = &value
	}
	if row.Reminder24hSentAt.Valid {
		value := row.Reminder24hSentAt.Time
		payment.Reminder24hSentAt = &value
	}
	if row.OverdueReminderSentAt.Valid {
		value := row.OverdueReminderSentAt.Time
		payment.OverdueReminderSentAt = &value
	}

	return payment
}
