package dto

type PaymentItem struct {
	ID                    uint64  `json:"id"`
	ClientName            string  `json:"client_name"`
	ProjectID             *uint64 `json:"project_id,omitempty"`
	InvoiceAmount         float64 `json:"invoice_amount"`
	AmountPaid            float64 `json:"amount_paid"`
	PendingAmount         float64 `json:"pending_amount"`
	Status                string  `json:"status"`
	InvoiceDate           string  `json:"invoice_date"`
	DueDate               string  `json:"due_date"`
	ResponsibleID         uint64  `json:"responsible_id"`
	Remarks               *string `json:"remarks,omitempty"`
	CustomReminderSentAt  *string `json:"custom_reminder_sent_at,omitempty"`
	Reminder24hSentAt     *string `json:"reminder_24h_sent_at,omitempty"`
	OverdueReminderSentAt *string `json:"overdue_reminder_sent_at,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type CreatePaymentRequest struct {
	ClientName    string  `json:"client_name" binding:"required,max=255"`
	ProjectID     *uint64 `json:"project_id" binding:"omitempty,gt=0"`
	InvoiceAmount float64 `json:"invoice_amount" binding:"required,gt=0"`
	InvoiceDate   string  `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	DueDate       string  `json:"due_date" binding:"required,datetime=2006-01-02"`
	ResponsibleID uint64  `json:"responsible_id" binding:"required,gt=0"`
	Remarks       *string `json:"remarks" binding:"omitempty,max=65535"`
}

type RecordPaymentRequest struct {
	// AmountPaid is the cumulative amount collected for the invoice, not an
	// increment.
	AmountPaid *float64 `json:"amount_paid" binding:"required,gte=0"`
}
