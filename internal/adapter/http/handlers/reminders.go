package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

type ReminderHandler struct {
	reminderService ports.ReminderService
	leadDays        int
}

func NewReminderHandler(reminderService ports.ReminderService, leadDays int) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, leadDays: leadDays}
}

// RunReminders triggers one payment-reminder batch. The body is optional:
// an empty invocation behaves like the nightly scheduled run.
func (h *ReminderHandler) RunReminders(c *gin.Context) {
	var req dto.RunRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.RunRemindersResponse{})
		return
	}

	opts := domain.ReminderRunOptions{
		Automatic: true,
		Enabled:   true,
		LeadDays:  h.leadDays,
	}
	if req.Automatic != nil {
		opts.Automatic = *req.Automatic
	}
	if req.PaymentRemindersEnabled != nil {
		opts.Enabled = *req.PaymentRemindersEnabled
	}
	if req.ReminderDays != nil && *req.ReminderDays > 0 {
		opts.LeadDays = *req.ReminderDays
	}
	if req.ReminderTime != nil {
		zap.L().Info("reminder run requested with schedule hint", zap.String("reminder_time", *req.ReminderTime))
	}

	summary, err := h.reminderService.Run(c.Request.Context(), opts)
	if err != nil {
		zap.L().Error("payment reminder run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.RunRemindersResponse{})
		return
	}

	c.JSON(http.StatusOK, dto.RunRemindersResponse{
		Success:     true,
		Sent:        summary.Sent,
		Skipped:     summary.Skipped,
		Overdue:     summary.Overdue,
		Upcoming72h: summary.Upcoming72h,
		Upcoming24h: summary.Upcoming24h,
	})
}
