package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

func newReminderFixture(payments *paymentRepoMock, profiles *profileRepoMock, mailer ports.Mailer) *ReminderService {
	svc := NewReminderService(payments, profiles, mailer, "no-reply@trymax.cloud", domain.DefaultReminderLeadDays)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestReminderService_Run_SendsOverdueReminder(t *testing.T) {
	overduePayment := domain.Payment{
		ID:            1,
		ClientName:    "Acme",
		InvoiceAmount: 1000,
		AmountPaid:    400,
		DueDate:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		ResponsibleID: 4,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{overduePayment}, nil).Once()
	payments.On("ClaimReminder", mock.Anything, uint64(1), domain.ReminderKindOverdue, mock.Anything, false).
		Return(true, nil).Once()

	profiles := new(profileRepoMock)
	profiles.On("GetByID", mock.Anything, uint64(4)).
		Return(domain.Profile{ID: 4, FullName: "Nora", Email: "nora@trymax.cloud"}, nil).Once()

	mailer := new(mailerMock)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.EmailMessage) bool {
		return msg.To == "nora@trymax.cloud" && msg.Subject == "Payment overdue: Acme"
	})).Return(nil).Once()

	svc := newReminderFixture(payments, profiles, mailer)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{Sent: 1, Overdue: 1}, summary)
	payments.AssertExpectations(t)
	profiles.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestReminderService_Run_SecondRunSkipsAlreadySent(t *testing.T) {
	sentAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	payment := domain.Payment{
		ID:                    1,
		ClientName:            "Acme",
		InvoiceAmount:         1000,
		DueDate:               time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		ResponsibleID:         4,
		OverdueReminderSentAt: &sentAt,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{payment}, nil).Once()

	profiles := new(profileRepoMock)
	mailer := new(mailerMock)
	svc := newReminderFixture(payments, profiles, mailer)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{Skipped: 1}, summary)
	mailer.AssertNotCalled(t, "Send")
}

func TestReminderService_Run_ForcedResendsAlreadySent(t *testing.T) {
	sentAt := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	payment := domain.Payment{
		ID:                    1,
		ClientName:            "Acme",
		InvoiceAmount:         1000,
		DueDate:               time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		ResponsibleID:         4,
		OverdueReminderSentAt: &sentAt,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{payment}, nil).Once()
	payments.On("ClaimReminder", mock.Anything, uint64(1), domain.ReminderKindOverdue, mock.Anything, true).
		Return(true, nil).Once()

	profiles := new(profileRepoMock)
	profiles.On("GetByID", mock.Anything, uint64(4)).
		Return(domain.Profile{ID: 4, FullName: "Nora", Email: "nora@trymax.cloud"}, nil).Once()

	mailer := new(mailerMock)
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newReminderFixture(payments, profiles, mailer)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: false, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Sent)
	payments.AssertExpectations(t)
}

func TestReminderService_Run_DisabledDoesNothing(t *testing.T) {
	payments := new(paymentRepoMock)
	profiles := new(profileRepoMock)
	svc := newReminderFixture(payments, profiles, nil)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: false})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{}, summary)
	payments.AssertNotCalled(t, "ListUnpaid")
}

func TestReminderService_Run_SkipsUnreachableResponsible(t *testing.T) {
	payment := domain.Payment{
		ID:            1,
		ClientName:    "Acme",
		InvoiceAmount: 1000,
		DueDate:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		ResponsibleID: 4,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{payment}, nil).Once()

	profiles := new(profileRepoMock)
	profiles.On("GetByID", mock.Anything, uint64(4)).
		Return(domain.Profile{ID: 4, FullName: "Nora"}, nil).Once()

	svc := newReminderFixture(payments, profiles, nil)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{Skipped: 1}, summary)
	// The claim must not be burned when no email can go out.
	payments.AssertNotCalled(t, "ClaimReminder")
}

func TestReminderService_Run_LostClaimCountsAsSkipped(t *testing.T) {
	payment := domain.Payment{
		ID:            1,
		ClientName:    "Acme",
		InvoiceAmount: 1000,
		DueDate:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		ResponsibleID: 4,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{payment}, nil).Once()
	payments.On("ClaimReminder", mock.Anything, uint64(1), domain.ReminderKindOverdue, mock.Anything, false).
		Return(false, nil).Once()

	profiles := new(profileRepoMock)
	profiles.On("GetByID", mock.Anything, uint64(4)).
		Return(domain.Profile{ID: 4, FullName: "Nora", Email: "nora@trymax.cloud"}, nil).Once()

	mailer := new(mailerMock)
	svc := newReminderFixture(payments, profiles, mailer)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{Skipped: 1}, summary)
	mailer.AssertNotCalled(t, "Send")
}

func TestReminderService_Run_FailedSendCountsAsSkipped(t *testing.T) {
	payment := domain.Payment{
		ID:            1,
		ClientName:    "Acme",
		InvoiceAmount: 1000,
		DueDate:       time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		ResponsibleID: 4,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{payment}, nil).Once()
	payments.On("ClaimReminder", mock.Anything, uint64(1), domain.ReminderKind24Hour, mock.Anything, false).
		Return(true, nil).Once()

	profiles := new(profileRepoMock)
	profiles.On("GetByID", mock.Anything, uint64(4)).
		Return(domain.Profile{ID: 4, FullName: "Nora", Email: "nora@trymax.cloud"}, nil).Once()

	mailer := new(mailerMock)
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp rejected")).Once()

	svc := newReminderFixture(payments, profiles, mailer)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{Skipped: 1}, summary)
}

func TestReminderService_Run_DryRunWithoutMailer(t *testing.T) {
	payment := domain.Payment{
		ID:            1,
		ClientName:    "Acme",
		InvoiceAmount: 1000,
		DueDate:       time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		ResponsibleID: 4,
	}

	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return([]domain.Payment{payment}, nil).Once()
	payments.On("ClaimReminder", mock.Anything, uint64(1), domain.ReminderKindCustom, mock.Anything, false).
		Return(true, nil).Once()

	profiles := new(profileRepoMock)
	profiles.On("GetByID", mock.Anything, uint64(4)).
		Return(domain.Profile{ID: 4, FullName: "Nora", Email: "nora@trymax.cloud"}, nil).Once()

	svc := newReminderFixture(payments, profiles, nil)

	summary, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.NoError(t, err)
	require.Equal(t, domain.ReminderRunSummary{Sent: 1, Upcoming72h: 1}, summary)
}

func TestReminderService_Run_ScanFailureAbortsBatch(t *testing.T) {
	payments := new(paymentRepoMock)
	payments.On("ListUnpaid", mock.Anything).Return(nil, errors.New("db is down")).Once()

	profiles := new(profileRepoMock)
	svc := newReminderFixture(payments, profiles, nil)

	_, err := svc.Run(context.Background(), domain.ReminderRunOptions{Automatic: true, Enabled: true})
	require.Error(t, err)
}

func TestBuildReminderEmail_Subjects(t *testing.T) {
	profile := domain.Profile{FullName: "Nora", Email: "nora@trymax.cloud"}
	payment := domain.Payment{
		ClientName:    "Acme",
		InvoiceAmount: 1000,
		AmountPaid:    400,
		DueDate:       time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	}

	overdue := buildReminderEmail("no-reply@trymax.cloud", profile, payment, domain.ReminderKindOverdue, 3)
	require.Equal(t, "Payment overdue: Acme", overdue.Subject)
	require.Contains(t, overdue.Text, "600.00 of 1000.00")

	dayBefore := buildReminderEmail("no-reply@trymax.cloud", profile, payment, domain.ReminderKind24Hour, 3)
	require.Equal(t, "Payment due tomorrow: Acme", dayBefore.Subject)

	custom := buildReminderEmail("no-reply@trymax.cloud", profile, payment, domain.ReminderKindCustom, 3)
	require.Equal(t, "Payment due in 3 days: Acme", custom.Subject)
	require.Equal(t, "no-reply@trymax.cloud", custom.From)
	require.Equal(t, "nora@trymax.cloud", custom.To)
}
