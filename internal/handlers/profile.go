package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) Get(c *gin.Context) {
	profile, err := ph.profileService.Get(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": profile})
}

func (ph *ProfileHandler) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	profile, err := ph.profileService.Update(c.Request.Context(), body)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Profile updated successfully.",
		"data":    profile,
	})
}
