package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/mapper"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/middleware"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/apierrors"
)

type RatingHandler struct {
	ratingService ports.RatingService
}

func NewRatingHandler(ratingService ports.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) CreateRating(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRatingBody, lang),
		)
		return
	}

	rating, err := h.ratingService.CreateRating(c.Request.Context(), domain.CreateRatingInput{
		RatedUserID: req.RatedUserID,
		PeriodType:  domain.RatingPeriodType(req.PeriodType),
		Period:      req.Period,
		Score:       req.Score,
		Remarks:     req.Remarks,
		RaterID:     req.RaterID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScore) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRatingBody, lang),
			)
			return
		}

		zap.L().Error("failed to create rating", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateRating, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToRatingItem(rating))
}

func (h *RatingHandler) ListRatings(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, ok := parseRatingFilter(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRatingBody, lang),
		)
		return
	}

	ratings, err := h.ratingService.ListRatings(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list ratings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRatings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRatingItems(ratings))
}

func (h *RatingHandler) DeleteRating(c *gin.Context) {
	lang := middleware.GetLang(c)

	ratingID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRatingID, lang),
		)
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), ratingID); err != nil {
		if errors.Is(err, domain.ErrRatingNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgRatingNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete rating", zap.Uint64("rating_id", ratingID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteRating, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseRatingFilter(c *gin.Context) (domain.RatingFilter, bool) {
	var filter domain.RatingFilter

	if value := c.Query("rated_user_id"); value != "" {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return domain.RatingFilter{}, false
		}
		filter.RatedUserID = &id
	}
	if value := c.Query("period_type"); value != "" {
		periodType := domain.RatingPeriodType(value)
		switch periodType {
		case domain.RatingPeriodMonthly, domain.RatingPeriodYearly:
			filter.PeriodType = &periodType
		default:
			return domain.RatingFilter{}, false
		}
	}
	if value := c.Query("period"); value != "" {
		filter.Period = &value
	}

	return filter, true
}
