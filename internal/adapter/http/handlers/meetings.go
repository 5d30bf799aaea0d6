package handlers

import (
	"errors"
	"net/http"
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

type MeetingHandler struct {
	meetingService ports.MeetingService
}

func NewMeetingHandler(meetingService ports.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidMeetingBody, lang),
		)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidMeetingBody, lang),
		)
		return
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), domain.CreateMeetingInput{
		Title:          req.Title,
		Note:           req.Note,
		Date:           date,
		Time:           req.Time,
		CreatedByID:    req.CreatedByID,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		zap.L().Error("failed to create meeting", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateMeeting, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMeetingItem(meeting))
}

func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	lang := middleware.GetLang(c)

	meetings, err := h.meetingService.ListMeetings(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list meetings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListMeetings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMeetingItems(meetings))
}

func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	lang := middleware.GetLang(c)

	meetingID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidMeetingID, lang),
		)
		return
	}

	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrMeetingNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgMeetingNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get meeting", zap.Uint64("meeting_id", meetingID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListMeetings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMeetingItem(meeting))
}

func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	lang := middleware.GetLang(c)

	meetingID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidMeetingID, lang),
		)
		return
	}

	if err := h.meetingService.DeleteMeeting(c.Request.Context(), meetingID); err != nil {
		if errors.Is(err, domain.ErrMeetingNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgMeetingNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete meeting", zap.Uint64("meeting_id", meetingID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteMeeting, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
