package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

// ReminderService is the payment follow-up batch job. It is stateless and
// safe to invoke repeatedly for the same day: each reminder kind is claimed
// on the payment row before a mail goes out.
type ReminderService struct {
	payments ports.PaymentRepository
	profiles ports.ProfileRepository
	// mailer may be nil, in which case the job logs the would-be email and
	// proceeds (dry run).
	mailer   ports.Mailer
	sender   string
	leadDays int
	now      func() time.Time
}

func NewReminderService(
	payments ports.PaymentRepository,
	profiles ports.ProfileRepository,
	mailer ports.Mailer,
	sender string,
	leadDays int,
) *ReminderService {
	if leadDays <= 0 {
		leadDays = domain.DefaultReminderLeadDays
	}
	return &ReminderService{
		payments: payments,
		profiles: profiles,
		mailer:   mailer,
		sender:   sender,
		leadDays: leadDays,
		now:      time.Now,
	}
}

var _ ports.ReminderService = (*ReminderService)(nil)

// Run scans every invoice that is not fully paid and sends at most one
// reminder per invoice for this run. Per-record failures are logged and
// counted as skipped; only a failed scan aborts the batch.
func (s *ReminderService) Run(ctx context.Context, opts domain.ReminderRunOptions) (domain.ReminderRunSummary, error) {
	var summary domain.ReminderRunSummary
	if !opts.Enabled {
		zap.L().Info("payment reminders disabled, nothing to do")
		return summary, nil
	}

	leadDays := opts.LeadDays
	if leadDays <= 0 {
		leadDays = s.leadDays
	}
	force := !opts.Automatic

	payments, err := s.payments.ListUnpaid(ctx)
	if err != nil {
		return domain.ReminderRunSummary{}, fmt.Errorf("list unpaid payments: %w", err)
	}

	today := s.now()
	for _, payment := range payments {
		kind := domain.ClassifyReminder(payment, today, leadDays, force)
		if kind == domain.ReminderKindNone {
			summary.Skipped++
			continue
		}

		profile, err := s.profiles.GetByID(ctx, payment.ResponsibleID)
		if err != nil || profile.Email == "" {
			zap.L().Warn("no reachable responsible user for payment reminder",
				zap.Uint64("payment_id", payment.ID),
				zap.Uint64("responsible_id", payment.ResponsibleID),
				zap.Error(err))
			summary.Skipped++
			continue
		}

		// Claim right before sending so overlapping runs cannot both pass
		// the already-sent check for the same invoice.
		claimed, err := s.payments.ClaimReminder(ctx, payment.ID, kind, s.now(), force)
		if err != nil {
			zap.L().Error("failed to claim payment reminder",
				zap.Uint64("payment_id", payment.ID),
				zap.String("kind", string(kind)),
				zap.Error(err))
			summary.Skipped++
			continue
		}
		if !claimed {
			summary.Skipped++
			continue
		}

		msg := buildReminderEmail(s.sender, profile, payment, kind, leadDays)
		if s.mailer == nil {
			zap.L().Info("mailer not configured, dry run",
				zap.Uint64("payment_id", payment.ID),
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject))
		} else if err := s.mailer.Send(ctx, msg); err != nil {
			// Failed sends are not re-queued within a run; the forced mode
			// exists for manual re-sends.
			zap.L().Error("failed to send payment reminder",
				zap.Uint64("payment_id", payment.ID),
				zap.String("kind", string(kind)),
				zap.Error(err))
			summary.Skipped++
			continue
		}

		summary.Sent++
		switch kind {
		case domain.ReminderKindOverdue:
			summary.Overdue++
		case domain.ReminderKind24Hour:
			summary.Upcoming24h++
		case domain.ReminderKindCustom:
			summary.Upcoming72h++
		}
	}

	zap.L().Info("payment reminder run finished",
		zap.Int("sent", summary.Sent),
		zap.Int("skipped", summary.Skipped),
		zap.Int("overdue", summary.Overdue),
		zap.Int("upcoming_72h", summary.Upcoming72h),
		zap.Int("upcoming_24h", summary.Upcoming24h))
	return summary, nil
}

func buildReminderEmail(sender string, profile domain.Profile, payment domain.Payment, kind domain.ReminderKind, leadDays int) ports.EmailMessage {
	due := payment.DueDate.Format("2006-01-02")
	pending := payment.PendingAmount()

	var subject, lead string
	switch kind {
	case domain.ReminderKindOverdue:
		subject = fmt.Sprintf("Payment overdue: %s", payment.ClientName)
		lead = fmt.Sprintf("The invoice for %s was due on %s and is now overdue.", payment.ClientName, due)
	case domain.ReminderKind24Hour:
		subject = fmt.Sprintf("Payment due tomorrow: %s", payment.ClientName)
		lead = fmt.Sprintf("The invoice for %s is due tomorrow (%s).", payment.ClientName, due)
	default:
		subject = fmt.Sprintf("Payment due in %d days: %s", leadDays, payment.ClientName)
		lead = fmt.Sprintf("The invoice for %s is due on %s.", payment.ClientName, due)
	}

	text := fmt.Sprintf("Hello %s,\n\n%s\nOutstanding amount: %.2f of %.2f.\n\nPlease follow up with the client.",
		profile.FullName, lead, pending, payment.InvoiceAmount)
	html := fmt.Sprintf("<p>Hello %s,</p><p>%s</p><p>Outstanding amount: <b>%.2f</b> of %.2f.</p><p>Please follow up with the client.</p>",
		profile.FullName, lead, pending, payment.InvoiceAmount)

	return ports.EmailMessage{
		From:    sender,
		To:      profile.Email,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}
}
