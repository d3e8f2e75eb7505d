package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
)

// IncludeErrorDetail adds the wrapped error chain to error bodies. Left
// off in production so storage detail never reaches clients.
var IncludeErrorDetail = false

func RespondError(c *gin.Context, err error) {
	e := apierr.FromError(err)
	body := gin.H{
		"ok":      false,
		"message": e.Error(),
		"code":    e.Code,
	}
	if IncludeErrorDetail {
		if inner := errors.Unwrap(e); inner != nil {
			body["detail"] = inner.Error()
		}
	}
	c.JSON(e.Status, body)
}

func AbortError(c *gin.Context, err error) {
	e := apierr.FromError(err)
	c.AbortWithStatusJSON(e.Status, gin.H{
		"ok":      false,
		"message": e.Error(),
		"code":    e.Code,
	})
}
