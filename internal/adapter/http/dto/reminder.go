package dto

// RunRemindersRequest mirrors the scheduler's invocation body. ReminderTime is
// the scheduler's own concern and is only echoed into logs.
type RunRemindersRequest struct {
	Automatic               *bool   `json:"automatic"`
	PaymentRemindersEnabled *bool   `json:"paymentRemindersEnabled"`
	ReminderDays            *int    `json:"reminderDays"`
	ReminderTime            *string `json:"reminderTime"`
}

type RunRemindersResponse struct {
	Success     bool `json:"success"`
	Sent        int  `json:"sent"`
	Skipped     int  `json:"skipped"`
	Overdue     int  `json:"overdue"`
	Upcoming72h int  `json:"upcoming_72h"`
	Upcoming24h int  `json:"upcoming_24h"`
}
