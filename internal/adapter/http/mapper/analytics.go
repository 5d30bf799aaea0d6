package mapper

import (
	"strconv"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

func ToAnalyticsReportItem(report domain.AnalyticsReport) dto.AnalyticsReportItem {
	byStatus := make(map[string]int, len(report.Tasks.ByStatus))
	for status, count := range report.Tasks.ByStatus {
		byStatus[string(status)] = count
	}

	employees := make([]dto.EmployeeStatsItem, 0, len(report.Employees))
	for _, stats := range report.Employees {
		employees = append(employees, dto.EmployeeStatsItem{
			AssigneeID:   stats.AssigneeID,
			Completed:    stats.Completed,
			Overdue:      stats.Overdue,
			Productivity: stats.Productivity,
		})
	}

	pendingByResponsible := make(map[string]float64, len(report.Payments.PendingByResponsible))
	for id, amount := range report.Payments.PendingByResponsible {
		pendingByResponsible[strconv.FormatUint(id, 10)] = amount
	}

	return dto.AnalyticsReportItem{
		Tasks: dto.TaskSummaryItem{
			Total:         report.Tasks.Total,
			ByStatus:      byStatus,
			Overdue:       report.Tasks.Overdue,
			Emergency:     report.Tasks.Emergency,
			CompletionPct: report.Tasks.CompletionPct,
		},
		Employees: employees,
		Payments: dto.PaymentSummaryItem{
			InvoicedTotal:        report.Payments.InvoicedTotal,
			PaidTotal:            report.Payments.PaidTotal,
			PendingAmount:        report.Payments.PendingAmount,
			OverdueAmount:        report.Payments.OverdueAmount,
			PendingByResponsible: pendingByResponsible,
			CollectionPct:        report.Payments.CollectionPct,
		},
		CompletionTrend: dto.TrendItem{
			Direction: string(report.CompletionTrend.Direction),
			ChangePct: report.CompletionTrend.ChangePct,
		},
		CollectionTrend: dto.TrendItem{
			Direction: string(report.CollectionTrend.Direction),
			ChangePct: report.CollectionTrend.ChangePct,
		},
	}
}
