package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/mapper"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/middleware"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/apierrors"
)

type AnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetReport aggregates tasks and payments over [from, to). Both bounds are
// required, from must precede to. Defaults to the current calendar month when
// neither is given.
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	lang := middleware.GetLang(c)

	from, to, ok := parseReportSpan(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAnalyticsSpan, lang),
		)
		return
	}

	report, err := h.analyticsService.Report(c.Request.Context(), from, to)
	if err != nil {
		zap.L().Error("failed to build analytics report",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBuildAnalytics, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnalyticsReportItem(report))
}

func parseReportSpan(c *gin.Context) (time.Time, time.Time, bool) {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")

	if fromRaw == "" && toRaw == "" {
		now := time.Now().UTC()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0), true
	}
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, false
	}

	from, err := time.Parse("2006-01-02", fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}
