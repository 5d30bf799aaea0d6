package service

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type PaymentService struct {
	payments ports.PaymentRepository
}

func NewPaymentService(payments ports.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

var _ ports.PaymentService = (*PaymentService)(nil)

func (s *PaymentService) CreatePayment(ctx context.Context, input domain.CreatePaymentInput) (domain.Payment, error) {
	if input.InvoiceAmount < 0 {
		return domain.Payment{}, domain.ErrInvalidPaidAmount
	}

	return s.payments.Create(ctx, domain.Payment{
		ClientName:    input.ClientName,
		ProjectID:     input.ProjectID,
		InvoiceAmount: input.InvoiceAmount,
		AmountPaid:    0,
		InvoiceDate:   input.InvoiceDate,
		DueDate:       input.DueDate,
		ResponsibleID: input.ResponsibleID,
		Remarks:       input.Remarks,
	})
}

func (s *PaymentService) GetPayment(ctx context.Context, id uint64) (domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	return s.payments.List(ctx, filter)
}

// RecordPayment sets the cumulative amount collected. The stored amount and
// the derived status move together by construction, which closes the drift
// the old per-call-site convention allowed.
func (s *PaymentService) RecordPayment(ctx context.Context, id uint64, amountPaid float64) (domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}

	if amountPaid < 0 || amountPaid > payment.InvoiceAmount {
		return domain.Payment{}, domain.ErrInvalidPaidAmount
	}

	payment.AmountPaid = amountPaid
	if err := s.payments.Update(ctx, payment); err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uint64) error {
	return s.payments.Delete(ctx, id)
}
