package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/config"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrNotConfigured   = errors.New("media storage is not configured")
)

var allowedMimeTypes = map[string]string{
	"image/jpeg": "images",
	"image/png":  "images",
	"image/webp": "images",
	"video/mp4":  "videos",
	"video/webm": "videos",
}

// Upload is the result handed back to the listing form: a public URL the
// client embeds in the ad's image_urls or video_urls.
type Upload struct {
	URL         string `json:"url"`
	StoragePath string `json:"storage_path"`
	MimeType    string `json:"mime_type"`
	FileSize    int64  `json:"file_size"`
}

type Service interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*Upload, error)
	Delete(ctx context.Context, storagePath string) error
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*Upload, error) {
	if s.minioClient == nil {
		return nil, ErrNotConfigured
	}

	kind, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if fileSize > s.cfg.MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	storagePath := fmt.Sprintf("%s/%s/%s", kind, time.Now().Format("2006/01"), uuid.New().String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
		UserMetadata: map[string]string{
			"uploaded-by":   userID.String(),
			"original-name": fileName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	return &Upload{
		URL:         s.publicURL(storagePath),
		StoragePath: storagePath,
		MimeType:    mimeType,
		FileSize:    fileSize,
	}, nil
}

func (s *service) Delete(ctx context.Context, storagePath string) error {
	if s.minioClient == nil {
		return ErrNotConfigured
	}
	if strings.Contains(storagePath, "..") {
		return fmt.Errorf("invalid storage path")
	}

	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}
