package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("password is required"))
		return
	}
	token, err := ah.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Authentication successful.",
		"token":   token,
	})
}
