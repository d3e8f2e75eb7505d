package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/services"
)

type stubMediaService struct {
	lastContentType string
}

func (s *stubMediaService) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*services.UploadResult, error) {
	s.lastContentType = contentType
	return &services.UploadResult{
		URL:      "https://cdn.example/portfolio/abc.jpg",
		PublicID: "portfolio/abc.jpg",
	}, nil
}

func uploadRouter(svc services.MediaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", NewUploadHandler(svc).Upload)
	return router
}

func multipartFile(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write([]byte("file-bytes")); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func postUpload(t *testing.T, router *gin.Engine, body *bytes.Buffer, contentType string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, payload
}

func TestUploadAcceptsImage(t *testing.T) {
	svc := &stubMediaService{}
	router := uploadRouter(svc)
	body, contentType := multipartFile(t, "image/jpeg")

	status, payload := postUpload(t, router, body, contentType)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if payload["url"] != "https://cdn.example/portfolio/abc.jpg" {
		t.Fatalf("url = %v, want the media host url", payload["url"])
	}
	if payload["publicId"] != "portfolio/abc.jpg" {
		t.Fatalf("publicId = %v, want the object key", payload["publicId"])
	}
	if svc.lastContentType != "image/jpeg" {
		t.Fatalf("forwarded content type = %q, want image/jpeg", svc.lastContentType)
	}
}

func TestUploadRejectsUnsupportedContentType(t *testing.T) {
	router := uploadRouter(&stubMediaService{})
	body, contentType := multipartFile(t, "application/zip")

	status, payload := postUpload(t, router, body, contentType)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
	}
	if payload["ok"] != false {
		t.Fatalf("ok = %v, want false", payload["ok"])
	}
}

func TestUploadRequiresFile(t *testing.T) {
	router := uploadRouter(&stubMediaService{})

	status, _ := postUpload(t, router, &bytes.Buffer{}, "multipart/form-data; boundary=empty")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
	}
}

func TestUploadWithoutMediaHost(t *testing.T) {
	router := uploadRouter(nil)
	body, contentType := multipartFile(t, "image/jpeg")

	status, _ := postUpload(t, router, body, contentType)
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", status, http.StatusInternalServerError)
	}
}
