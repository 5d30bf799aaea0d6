package mapper

import (
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToPaymentItems(payments []domain.Payment) []dto.PaymentItem {
	items := make([]dto.PaymentItem, 0, len(payments))
	for _, payment := range payments {
		items = append(items, ToPaymentItem(payment))
	}
	return items
}

func ToPaymentItem(payment domain.Payment) dto.PaymentItem {
	item := dto.PaymentItem{
		ID:            payment.ID,
		ClientName:    payment.ClientName,
		InvoiceAmount: payment.InvoiceAmount,
		AmountPaid:    payment.AmountPaid,
		PendingAmount: payment.PendingAmount(),
		Status:        string(payment.Status()),
		InvoiceDate:   payment.InvoiceDate.Format("2006-01-02"),
		DueDate:       payment.DueDate.Format("2006-01-02"),
		ResponsibleID: payment.ResponsibleID,
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     payment.UpdatedAt.Format(time.RFC3339),
	}

	if payment.ProjectID != nil {
		value := *payment.ProjectID
		item.ProjectID = &value
	}
	if payment.Remarks != nil {
		value := *payment.Remarks
		item.Remarks = &value
	}
	if payment.CustomReminderSentAt != nil {
		value := payment.CustomReminderSentAt.Format(time.RFC3339)
		item.CustomReminderSentAt = &value
	}
	if payment.Reminder24hSentAt != nil {
		value := payment.Reminder24hSentAt.Format(time.RFC3339)
		item.Reminder24hSentAt = &value
	}
	if payment.OverdueReminderSentAt != nil {
		value := payment.OverdueReminderSentAt.Format(time.RFC3339)
		item.OverdueReminderSentAt = &value
	}

	return item
}
