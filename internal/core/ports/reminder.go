package ports

import (
	"context"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type ReminderService interface {
	Run(ctx context.Context, opts domain.ReminderRunOptions) (domain.ReminderRunSummary, error)
}
