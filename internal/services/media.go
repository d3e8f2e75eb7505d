package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/arquinori/portfolio-backend/internal/config"
	"github.com/arquinori/portfolio-backend/internal/logger"
)

const (
	imageFolder = "portfolio"
	pdfFolder   = "portfolio/cv"
)

type UploadResult struct {
	URL      string
	PublicID string
}

// MediaService proxies admin uploads to the bucket that serves the public
// site's images and the CV download.
type MediaService interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (*UploadResult, error)
}

type mediaService struct {
	log           *logger.Logger
	storageClient *storage.Client
	bucketName    string
	cdnDomain     string
}

func NewMediaService(cfg *config.Config, log *logger.Logger) (MediaService, error) {
	serviceLog := log.With("service", "MediaService")
	if cfg.GCSBucket == "" {
		return nil, fmt.Errorf("missing env var GCS_BUCKET_NAME")
	}
	saPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")
	ctx := context.Background()
	var stClient *storage.Client
	var err error
	if saPath != "" {
		stClient, err = storage.NewClient(ctx, option.WithCredentialsFile(saPath), option.WithScopes(storage.ScopeReadWrite))
	} else {
		stClient, err = storage.NewClient(ctx, option.WithScopes(storage.ScopeReadWrite))
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to create storage client: %w", err)
	}
	return &mediaService{
		log:           serviceLog,
		storageClient: stClient,
		bucketName:    cfg.GCSBucket,
		cdnDomain:     cfg.CDNDomain,
	}, nil
}

func (ms *mediaService) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*UploadResult, error) {
	folder := imageFolder
	if contentType == "application/pdf" {
		folder = pdfFolder
	}
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), safeExt(filename))

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	w := ms.storageClient.Bucket(ms.bucketName).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("Failed to write upload to bucket: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("Failed to finish upload to bucket: %w", err)
	}

	ms.log.Info("Uploaded media object", "key", key, "content_type", contentType)
	return &UploadResult{URL: ms.publicURL(key), PublicID: key}, nil
}

func (ms *mediaService) publicURL(key string) string {
	if ms.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", ms.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", ms.bucketName, key)
}

func safeExt(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 8 {
		return ""
	}
	return ext
}
