package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/services"
)

// UploadHandler proxies admin file uploads to the media host. The service
// may be nil when the host is not configured; uploads then fail with a 500
// instead of taking the whole server down at startup.
type UploadHandler struct {
	mediaService services.MediaService
}

func NewUploadHandler(mediaService services.MediaService) *UploadHandler {
	return &UploadHandler{mediaService: mediaService}
}

func (uh *UploadHandler) Upload(c *gin.Context) {
	if uh.mediaService == nil {
		RespondError(c, apierr.Upstream(fmt.Errorf("media host is not configured")))
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, apierr.Validation("no file provided"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	isPDF := contentType == "application/pdf"
	if !isPDF && !strings.HasPrefix(contentType, "image/") {
		RespondError(c, apierr.Validation("only images and PDF files are allowed"))
		return
	}

	result, err := uh.mediaService.Upload(c.Request.Context(), header.Filename, contentType, file)
	if err != nil {
		RespondError(c, apierr.Upstream(err))
		return
	}

	message := "File uploaded successfully."
	if isPDF {
		message = "PDF uploaded successfully."
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"message":  message,
		"url":      result.URL,
		"publicId": result.PublicID,
	})
}
