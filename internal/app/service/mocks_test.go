package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepoMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepoMock) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, from, to)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) Update(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type paymentRepoMock struct {
	mock.Mock
}

func (m *paymentRepoMock) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *paymentRepoMock) GetByID(ctx context.Context, id uint64) (domain.Payment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *paymentRepoMock) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	args := m.Called(ctx, filter)

	var payments []domain.Payment
	if value := args.Get(0); value != nil {
		payments = value.([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *paymentRepoMock) ListUnpaid(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)

	var payments []domain.Payment
	if value := args.Get(0); value != nil {
		payments = value.([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *paymentRepoMock) ListInvoicedBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, from, to)

	var payments []domain.Payment
	if value := args.Get(0); value != nil {
		payments = value.([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *paymentRepoMock) Update(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *paymentRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *paymentRepoMock) ClaimReminder(ctx context.Context, id uint64, kind domain.ReminderKind, at time.Time, force bool) (bool, error) {
	args := m.Called(ctx, id, kind, at, force)
	return args.Bool(0), args.Error(1)
}

type profileRepoMock struct {
	mock.Mock
}

func (m *profileRepoMock) GetByID(ctx context.Context, id uint64) (domain.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *profileRepoMock) List(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)

	var profiles []domain.Profile
	if value := args.Get(0); value != nil {
		profiles = value.([]domain.Profile)
	}
	return profiles, args.Error(1)
}

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) Send(ctx context.Context, msg ports.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
