package domain

import "time"

type ReminderKind string

const (
	ReminderKindNone    ReminderKind = ""
	ReminderKindCustom  ReminderKind = "custom"
	ReminderKind24Hour  ReminderKind = "24h"
	ReminderKindOverdue ReminderKind = "overdue"
)

const DefaultReminderLeadDays = 3

// ReminderRunOptions control one batch invocation. Automatic is the scheduled
// mode: already-sent reminders are suppressed. A manual run (Automatic=false)
// bypasses the suppression so reminders can be re-sent on demand.
type ReminderRunOptions struct {
	Automatic bool
	Enabled   bool
	LeadDays  int
}

type ReminderRunSummary struct {
	Sent        int
	Skipped     int
	Overdue     int
	Upcoming72h int
	Upcoming24h int
}

// DateOf truncates a timestamp to its calendar day in UTC so that due-date
// windows compare at day granularity regardless of wall-clock time.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClassifyReminder picks at most one reminder for a payment on the given day.
// Checks run in priority order, so an invoice that is overdue and also happens
// to sit on the lead-day boundary is reported as overdue only. With force set
// the already-sent suppression is bypassed.
func ClassifyReminder(p Payment, today time.Time, leadDays int, force bool) ReminderKind {
	if p.Status() == PaymentStatusPaid {
		return ReminderKindNone
	}
	if leadDays <= 0 {
		leadDays = DefaultReminderLeadDays
	}

	due := DateOf(p.DueDate)
	day := DateOf(today)

	switch {
	case due.Before(day):
		if force || p.OverdueReminderSentAt == nil {
			return ReminderKindOverdue
		}
	case due.Equal(day.AddDate(0, 0, 1)):
		if force || p.Reminder24hSentAt == nil {
			return ReminderKind24Hour
		}
	case due.Equal(day.AddDate(0, 0, leadDays)):
		if force || p.CustomReminderSentAt == nil {
			return ReminderKindCustom
		}
	}

	return ReminderKindNone
}
