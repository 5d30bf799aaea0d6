package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyReminder(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	sentAt := time.Date(2026, 3, 9, 6, 0, 0, 0, time.UTC)

	due := func(days int) time.Time {
		return time.Date(2026, 3, 10+days, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		payment Payment
		force   bool
		want    ReminderKind
	}{
		{
			name:    "due in lead days",
			payment: Payment{InvoiceAmount: 100, DueDate: due(3)},
			want:    ReminderKindCustom,
		},
		{
			name:    "due tomorrow",
			payment: Payment{InvoiceAmount: 100, DueDate: due(1)},
			want:    ReminderKind24Hour,
		},
		{
			name:    "past due",
			payment: Payment{InvoiceAmount: 100, DueDate: due(-1)},
			want:    ReminderKindOverdue,
		},
		{
			name:    "due today",
			payment: Payment{InvoiceAmount: 100, DueDate: due(0)},
			want:    ReminderKindNone,
		},
		{
			name:    "due outside every window",
			payment: Payment{InvoiceAmount: 100, DueDate: due(5)},
			want:    ReminderKindNone,
		},
		{
			name:    "fully paid invoice never reminds",
			payment: Payment{InvoiceAmount: 100, AmountPaid: 100, DueDate: due(-10)},
			want:    ReminderKindNone,
		},
		{
			name:    "custom already sent",
			payment: Payment{InvoiceAmount: 100, DueDate: due(3), CustomReminderSentAt: &sentAt},
			want:    ReminderKindNone,
		},
		{
			name:    "24h already sent",
			payment: Payment{InvoiceAmount: 100, DueDate: due(1), Reminder24hSentAt: &sentAt},
			want:    ReminderKindNone,
		},
		{
			name:    "overdue already sent",
			payment: Payment{InvoiceAmount: 100, DueDate: due(-1), OverdueReminderSentAt: &sentAt},
			want:    ReminderKindNone,
		},
		{
			name:    "force re-sends an already sent reminder",
			payment: Payment{InvoiceAmount: 100, DueDate: due(-1), OverdueReminderSentAt: &sentAt},
			force:   true,
			want:    ReminderKindOverdue,
		},
		{
			name: "overdue wins over lead-day window",
			payment: Payment{
				InvoiceAmount:        100,
				DueDate:              due(-1),
				CustomReminderSentAt: &sentAt,
			},
			want: ReminderKindOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyReminder(tt.payment, today, DefaultReminderLeadDays, tt.force)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyReminder_CustomLeadDays(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	payment := Payment{InvoiceAmount: 100, DueDate: time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, ReminderKindCustom, ClassifyReminder(payment, today, 7, false))
	require.Equal(t, ReminderKindNone, ClassifyReminder(payment, today, 3, false))

	// Non-positive lead days fall back to the default.
	threeDaysOut := Payment{InvoiceAmount: 100, DueDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, ReminderKindCustom, ClassifyReminder(threeDaysOut, today, 0, false))
}

func TestDateOf(t *testing.T) {
	stamp := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(stamp))
}
