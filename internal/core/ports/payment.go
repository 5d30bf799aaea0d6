package ports

import (
	"context"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	GetByID(ctx context.Context, id uint64) (domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	ListUnpaid(ctx context.Context) ([]domain.Payment, error)
	ListInvoicedBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
	Update(ctx context.Context, payment domain.Payment) error
	Delete(ctx context.Context, id uint64) error
	// ClaimReminder stamps the sent-at column for one reminder kind and
	// reports whether this caller won the claim. Without force the update is
	// conditional on the column still being NULL, so overlapping batch runs
	// cannot both claim the same reminder.
	ClaimReminder(ctx context.Context, id uint64, kind domain.ReminderKind, at time.Time, force bool) (bool, error)
}

type PaymentService interface {
	CreatePayment(ctx context.Context, input domain.CreatePaymentInput) (domain.Payment, error)
	GetPayment(ctx context.Context, id uint64) (domain.Payment, error)
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	// RecordPayment sets the total amount collected so far; status is derived
	// from the amounts, never stored independently.
	RecordPayment(ctx context.Context, id uint64, amountPaid float64) (domain.Payment, error)
	DeletePayment(ctx context.Context, id uint64) error
}
