package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/handlers"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireAdmin gates every mutating route behind the admin bearer token.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			handlers.AbortError(c, apierr.Unauthorized("missing or invalid token"))
			return
		}
		if err := am.authService.VerifyToken(tokenString); err != nil {
			am.log.Debug("Rejected bearer token", "error", err)
			handlers.AbortError(c, apierr.Unauthorized("invalid or expired token"))
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
