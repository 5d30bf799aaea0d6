package domain

import (
	"math"
	"sort"
	"time"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// trendDeadBandPct absorbs negligible period-over-period deltas so dashboards
// do not flap between up and down on noise.
const trendDeadBandPct = 2.0

type Trend struct {
	Direction TrendDirection
	ChangePct int
}

// ClassifyTrend compares a metric across two periods. A zero previous value
// cannot yield a percentage, so the direction falls back to up when anything
// appeared this period and stable otherwise.
func ClassifyTrend(previous, current float64) Trend {
	if previous == 0 {
		if current > 0 {
			return Trend{Direction: TrendUp, ChangePct: 100}
		}
		return Trend{Direction: TrendStable, ChangePct: 0}
	}

	change := (current - previous) / previous * 100
	direction := TrendStable
	if change > trendDeadBandPct {
		direction = TrendUp
	} else if change < -trendDeadBandPct {
		direction = TrendDown
	}
	return Trend{Direction: direction, ChangePct: roundPct(change)}
}

type TaskSummary struct {
	Total         int
	ByStatus      map[TaskStatus]int
	Overdue       int
	Emergency     int
	CompletionPct int
}

type EmployeeStats struct {
	AssigneeID   uint64
	Completed    int
	Overdue      int
	Productivity int
}

type PaymentSummary struct {
	InvoicedTotal        float64
	PaidTotal            float64
	PendingAmount        float64
	OverdueAmount        float64
	PendingByResponsible map[uint64]float64
	CollectionPct        int
}

type PeriodData struct {
	Tasks    []Task
	Payments []Payment
}

type AnalyticsReport struct {
	Tasks           TaskSummary
	Employees       []EmployeeStats
	Payments        PaymentSummary
	CompletionTrend Trend
	CollectionTrend Trend
}

// SummarizeTasks reduces a period's tasks to dashboard counters.
func SummarizeTasks(tasks []Task, now time.Time) TaskSummary {
	summary := TaskSummary{
		Total:    len(tasks),
		ByStatus: map[TaskStatus]int{},
	}

	for _, task := range tasks {
		summary.ByStatus[task.Status]++
		if taskOverdue(task, now) {
			summary.Overdue++
		}
		if task.Priority == TaskPriorityEmergency {
			summary.Emergency++
		}
	}

	if summary.Total > 0 {
		summary.CompletionPct = roundPct(float64(summary.ByStatus[TaskStatusCompleted]) / float64(summary.Total) * 100)
	}
	return summary
}

// EmployeeBreakdown rolls tasks up per assignee. Productivity weighs finished
// work against overdue work and never goes negative.
func EmployeeBreakdown(tasks []Task, now time.Time) []EmployeeStats {
	byAssignee := map[uint64]*EmployeeStats{}
	for _, task := range tasks {
		stats, ok := byAssignee[task.AssigneeID]
		if !ok {
			stats = &EmployeeStats{AssigneeID: task.AssigneeID}
			byAssignee[task.AssigneeID] = stats
		}
		if task.Status == TaskStatusCompleted {
			stats.Completed++
		}
		if taskOverdue(task, now) {
			stats.Overdue++
		}
	}

	breakdown := make([]EmployeeStats, 0, len(byAssignee))
	for _, stats := range byAssignee {
		stats.Productivity = stats.Completed*10 - stats.Overdue*5
		if stats.Productivity < 0 {
			stats.Productivity = 0
		}
		breakdown = append(breakdown, *stats)
	}

	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].AssigneeID < breakdown[j].AssigneeID })
	return breakdown
}

// SummarizePayments reduces a period's payments to collection counters.
func SummarizePayments(payments []Payment, now time.Time) PaymentSummary {
	summary := PaymentSummary{
		PendingByResponsible: map[uint64]float64{},
	}

	for _, payment := range payments {
		summary.InvoicedTotal += payment.InvoiceAmount
		summary.PaidTotal += payment.AmountPaid

		pending := payment.PendingAmount()
		if pending > 0 {
			summary.PendingAmount += pending
			summary.PendingByResponsible[payment.ResponsibleID] += pending
		}
		if payment.Overdue(now) {
			summary.OverdueAmount += pending
		}
	}

	if summary.InvoicedTotal > 0 {
		summary.CollectionPct = roundPct(summary.PaidTotal / summary.InvoicedTotal * 100)
	}
	return summary
}

// BuildReport aggregates one period and derives trends against the previous
// equal-length period.
func BuildReport(current, previous PeriodData, now time.Time) AnalyticsReport {
	tasks := SummarizeTasks(current.Tasks, now)
	payments := SummarizePayments(current.Payments, now)

	previousTasks := SummarizeTasks(previous.Tasks, now)
	previousPayments := SummarizePayments(previous.Payments, now)

	return AnalyticsReport{
		Tasks:           tasks,
		Employees:       EmployeeBreakdown(current.Tasks, now),
		Payments:        payments,
		CompletionTrend: ClassifyTrend(float64(previousTasks.CompletionPct), float64(tasks.CompletionPct)),
		CollectionTrend: ClassifyTrend(float64(previousPayments.CollectionPct), float64(payments.CollectionPct)),
	}
}

func taskOverdue(task Task, now time.Time) bool {
	if task.Status == TaskStatusCompleted || task.DueDate == nil {
		return false
	}
	return DateOf(*task.DueDate).Before(DateOf(now))
}

func roundPct(value float64) int {
	return int(math.Round(value))
}
