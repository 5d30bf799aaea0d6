package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		current  float64
		want     Trend
	}{
		{"both zero", 0, 0, Trend{Direction: TrendStable, ChangePct: 0}},
		{"from zero to anything", 0, 5, Trend{Direction: TrendUp, ChangePct: 100}},
		{"inside the dead band", 100, 101.5, Trend{Direction: TrendStable, ChangePct: 2}},
		{"just above the dead band", 100, 103, Trend{Direction: TrendUp, ChangePct: 3}},
		{"clear growth", 100, 150, Trend{Direction: TrendUp, ChangePct: 50}},
		{"clear decline", 100, 60, Trend{Direction: TrendDown, ChangePct: -40}},
		{"small decline inside dead band", 100, 98.5, Trend{Direction: TrendStable, ChangePct: -2}},
		{"drop to zero", 50, 0, Trend{Direction: TrendDown, ChangePct: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyTrend(tt.previous, tt.current))
		})
	}
}

func TestSummarizeTasks(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{Status: TaskStatusCompleted, DueDate: &past},
		{Status: TaskStatusInProgress, DueDate: &past, Priority: TaskPriorityEmergency},
		{Status: TaskStatusInProgress, DueDate: &future},
		{Status: TaskStatusNotStarted},
	}

	summary := SummarizeTasks(tasks, now)
	require.Equal(t, 4, summary.Total)
	require.Equal(t, 1, summary.ByStatus[TaskStatusCompleted])
	require.Equal(t, 2, summary.ByStatus[TaskStatusInProgress])
	require.Equal(t, 1, summary.ByStatus[TaskStatusNotStarted])
	// Completed tasks are never overdue regardless of due date.
	require.Equal(t, 1, summary.Overdue)
	require.Equal(t, 1, summary.Emergency)
	require.Equal(t, 25, summary.CompletionPct)
}

func TestSummarizeTasks_Empty(t *testing.T) {
	summary := SummarizeTasks(nil, time.Now())
	require.Equal(t, 0, summary.Total)
	require.Equal(t, 0, summary.CompletionPct)
}

func TestEmployeeBreakdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{AssigneeID: 2, Status: TaskStatusCompleted},
		{AssigneeID: 2, Status: TaskStatusCompleted},
		{AssigneeID: 2, Status: TaskStatusInProgress, DueDate: &past},
		{AssigneeID: 1, Status: TaskStatusInProgress, DueDate: &past},
		{AssigneeID: 1, Status: TaskStatusOnHold, DueDate: &past},
		{AssigneeID: 1, Status: TaskStatusNotStarted, DueDate: &past},
	}

	breakdown := EmployeeBreakdown(tasks, now)
	require.Len(t, breakdown, 2)

	// Sorted by assignee; productivity floors at zero.
	require.Equal(t, uint64(1), breakdown[0].AssigneeID)
	require.Equal(t, 0, breakdown[0].Completed)
	require.Equal(t, 3, breakdown[0].Overdue)
	require.Equal(t, 0, breakdown[0].Productivity)

	require.Equal(t, uint64(2), breakdown[1].AssigneeID)
	require.Equal(t, 2, breakdown[1].Completed)
	require.Equal(t, 1, breakdown[1].Overdue)
	require.Equal(t, 15, breakdown[1].Productivity)
}

func TestSummarizePayments(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	pastDue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	futureDue := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	payments := []Payment{
		{InvoiceAmount: 1000, AmountPaid: 400, DueDate: pastDue, ResponsibleID: 1},
		{InvoiceAmount: 500, AmountPaid: 500, DueDate: pastDue, ResponsibleID: 1},
		{InvoiceAmount: 300, AmountPaid: 0, DueDate: futureDue, ResponsibleID: 2},
	}

	summary := SummarizePayments(payments, now)
	require.Equal(t, 1800.0, summary.InvoicedTotal)
	require.Equal(t, 900.0, summary.PaidTotal)
	require.Equal(t, 900.0, summary.PendingAmount)
	require.Equal(t, 600.0, summary.OverdueAmount)
	require.Equal(t, 600.0, summary.PendingByResponsible[1])
	require.Equal(t, 300.0, summary.PendingByResponsible[2])
	require.Equal(t, 50, summary.CollectionPct)
}

func TestBuildReport_Trends(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	current := PeriodData{
		Tasks: []Task{
			{AssigneeID: 1, Status: TaskStatusCompleted},
			{AssigneeID: 1, Status: TaskStatusInProgress},
		},
		Payments: []Payment{{InvoiceAmount: 100, AmountPaid: 100, ResponsibleID: 1, DueDate: now}},
	}
	previous := PeriodData{
		Tasks: []Task{
			{AssigneeID: 1, Status: TaskStatusCompleted},
			{AssigneeID: 1, Status: TaskStatusInProgress},
			{AssigneeID: 1, Status: TaskStatusInProgress},
			{AssigneeID: 1, Status: TaskStatusInProgress},
		},
		Payments: []Payment{{InvoiceAmount: 100, AmountPaid: 50, ResponsibleID: 1, DueDate: now}},
	}

	report := BuildReport(current, previous, now)
	require.Equal(t, 50, report.Tasks.CompletionPct)
	require.Equal(t, TrendUp, report.CompletionTrend.Direction)
	require.Equal(t, 100, report.CompletionTrend.ChangePct)
	require.Equal(t, TrendUp, report.CollectionTrend.Direction)
	require.Equal(t, 100, report.CollectionTrend.ChangePct)
	require.Len(t, report.Employees, 1)
}
