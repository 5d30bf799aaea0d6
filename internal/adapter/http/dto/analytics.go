package dto

type TrendItem struct {
	Direction string `json:"direction"`
	ChangePct int    `json:"change_pct"`
}

type TaskSummaryItem struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	Overdue       int            `json:"overdue"`
	Emergency     int            `json:"emergency"`
	CompletionPct int            `json:"completion_pct"`
}

type EmployeeStatsItem struct {
	AssigneeID   uint64 `json:"assignee_id"`
	Completed    int    `json:"completed"`
	Overdue      int    `json:"overdue"`
	Productivity int    `json:"productivity"`
}

type PaymentSummaryItem struct {
	InvoicedTotal        float64            `json:"invoiced_total"`
	PaidTotal            float64            `json:"paid_total"`
	PendingAmount        float64            `json:"pending_amount"`
	OverdueAmount        float64            `json:"overdue_amount"`
	PendingByResponsible map[string]float64 `json:"pending_by_responsible"`
	CollectionPct        int                `json:"collection_pct"`
}

type AnalyticsReportItem struct {
	Tasks           TaskSummaryItem     `json:"tasks"`
	Employees       []EmployeeStatsItem `json:"employees"`
	Payments        PaymentSummaryItem  `json:"payments"`
	CompletionTrend TrendItem           `json:"completion_trend"`
	CollectionTrend TrendItem           `json:"collection_trend"`
}
