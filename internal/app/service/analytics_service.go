package service

import (
	"context"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type AnalyticsService struct {
	tasks    ports.TaskRepository
	payments ports.PaymentRepository
	now      func() time.Time
}

func NewAnalyticsService(tasks ports.TaskRepository, payments ports.PaymentRepository) *AnalyticsService {
	return &AnalyticsService{tasks: tasks, payments: payments, now: time.Now}
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)

// Report aggregates [from, to) and derives trends against the equal-length
// window immediately before it.
func (s *AnalyticsService) Report(ctx context.Context, from, to time.Time) (domain.AnalyticsReport, error) {
	previousFrom := from.Add(-to.Sub(from))

	current, err := s.loadPeriod(ctx, from, to)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}
	previous, err := s.loadPeriod(ctx, previousFrom, from)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}

	return domain.BuildReport(current, previous, s.now()), nil
}

func (s *AnalyticsService) loadPeriod(ctx context.Context, from, to time.Time) (domain.PeriodData, error) {
	tasks, err := s.tasks.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return domain.PeriodData{}, err
	}
	payments, err := s.payments.ListInvoicedBetween(ctx, from, to)
	if err != nil {
		return domain.PeriodData{}, err
	}
	return domain.PeriodData{Tasks: tasks, Payments: payments}, nil
}
