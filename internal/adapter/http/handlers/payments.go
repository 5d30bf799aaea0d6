package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/mapper"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/middleware"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/apierrors"
)

type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentBody, lang),
		)
		return
	}

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentBody, lang),
		)
		return
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentBody, lang),
		)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), domain.CreatePaymentInput{
		ClientName:    req.ClientName,
		ProjectID:     req.ProjectID,
		InvoiceAmount: req.InvoiceAmount,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		ResponsibleID: req.ResponsibleID,
		Remarks:       req.Remarks,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPaidAmount) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaidAmount, lang),
			)
			return
		}

		zap.L().Error("failed to create payment", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreatePayment, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPaymentItem(payment))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, ok := parsePaymentFilter(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentBody, lang),
		)
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list payments", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListPayments, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPaymentItems(payments))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	lang := middleware.GetLang(c)

	paymentID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentID, lang),
		)
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPaymentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get payment", zap.Uint64("payment_id", paymentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListPayments, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPaymentItem(payment))
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	lang := middleware.GetLang(c)

	paymentID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentID, lang),
		)
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AmountPaid == nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentBody, lang),
		)
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), paymentID, *req.AmountPaid)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPaymentNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidPaidAmount):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaidAmount, lang),
			)
		default:
			zap.L().Error("failed to record payment", zap.Uint64("payment_id", paymentID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdatePayment, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToPaymentItem(payment))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	lang := middleware.GetLang(c)

	paymentID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPaymentID, lang),
		)
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPaymentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete payment", zap.Uint64("payment_id", paymentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeletePayment, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parsePaymentFilter(c *gin.Context) (domain.PaymentFilter, bool) {
	var filter domain.PaymentFilter

	if value := c.Query("project_id"); value != "" {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return domain.PaymentFilter{}, false
		}
		filter.ProjectID = &id
	}
	if value := c.Query("responsible_id"); value != "" {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return domain.PaymentFilter{}, false
		}
		filter.ResponsibleID = &id
	}
	if value := c.Query("status"); value != "" {
		status := domain.PaymentStatus(value)
		switch status {
		case domain.PaymentStatusPending, domain.PaymentStatusPartiallyPaid, domain.PaymentStatusPaid:
			filter.Status = &status
		default:
			return domain.PaymentFilter{}, false
		}
	}

	return filter, true
}
