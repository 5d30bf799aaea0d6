package ports

import (
	"context"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
)

type AnalyticsService interface {
	// Report aggregates the [from, to) window and derives trends against the
	// equal-length window immediately before it.
	Report(ctx context.Context, from, to time.Time) (domain.AnalyticsReport, error)
}
