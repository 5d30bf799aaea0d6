package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/mapper"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/middleware"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/apierrors"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	lang := middleware.GetLang(c)

	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list profiles", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProfiles, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfileItems(profiles))
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	lang := middleware.GetLang(c)

	profileID, ok := parseID(c, "id")
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProfileID, lang),
		)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProfileNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get profile", zap.Uint64("profile_id", profileID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProfiles, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfileItem(profile))
}
