package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
)

type Payment struct {
	ID            uint64
	ClientName    string
	ProjectID     *uint64
	InvoiceAmount float64
	AmountPaid    float64
	InvoiceDate   time.Time
	DueDate       time.Time
	ResponsibleID uint64
	Remarks       *string
	// Per-classification reminder timestamps. A non-nil value suppresses a
	// second send of the same reminder kind on later batch runs.
	CustomReminderSentAt  *time.Time
	Reminder24hSentAt     *time.Time
	OverdueReminderSentAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Status is derived from the two amounts so the pair can never drift apart.
func (p Payment) Status() PaymentStatus {
	switch {
	case p.AmountPaid <= 0:
		return PaymentStatusPending
	case p.AmountPaid < p.InvoiceAmount:
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusPaid
	}
}

// PendingAmount is what the client still owes on this invoice.
func (p Payment) PendingAmount() float64 {
	if remaining := p.InvoiceAmount - p.AmountPaid; remaining > 0 {
		return remaining
	}
	return 0
}

// Overdue reports whether an unpaid invoice's due date has passed, compared
// at day granularity.
func (p Payment) Overdue(today time.Time) bool {
	if p.Status() == PaymentStatusPaid {
		return false
	}
	return DateOf(p.DueDate).Before(DateOf(today))
}

type CreatePaymentInput struct {
	ClientName    string
	ProjectID     *uint64
	InvoiceAmount float64
	InvoiceDate   time.Time
	DueDate       time.Time
	ResponsibleID uint64
	Remarks       *string
}

type PaymentFilter struct {
	ProjectID     *uint64
	ResponsibleID *uint64
	Status        *PaymentStatus
}
