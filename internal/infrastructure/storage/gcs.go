package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/llOrtegall/backend-app-full-stack/internal/application"
	"github.com/llOrtegall/backend-app-full-stack/pkg/helpers"
)

// GCSFileStorage implements the FileStorage port on Google Cloud Storage.
// Uploaded objects get a generated name under products/ so original
// filenames never collide.
type GCSFileStorage struct {
	Client *gcs.Client
	Bucket string
}

func NewGCSFileStorage(client *gcs.Client, bucket string) *GCSFileStorage {
	return &GCSFileStorage{Client: client, Bucket: bucket}
}

func (s *GCSFileStorage) UploadImage(ctx context.Context, img application.ImageUpload) (string, error) {
	if s.Client == nil || s.Bucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(img.Filename))
	objectPath := path.Join("products", uuid.NewString()+ext)
	url, err := helpers.UploadObject(ctx, s.Client, s.Bucket, objectPath, img.ContentType, img.Reader)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	return url, nil
}

func (s *GCSFileStorage) DeleteImage(ctx context.Context, url string) error {
	if s.Client == nil || s.Bucket == "" {
		return errors.New("gcs not configured")
	}
	prefix := helpers.PublicURL(s.Bucket, "")
	objectPath := strings.TrimPrefix(url, prefix)
	if objectPath == url || objectPath == "" {
		return fmt.Errorf("url %q does not belong to bucket %s", url, s.Bucket)
	}
	if err := s.Client.Bucket(s.Bucket).Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

var _ application.FileStorage = (*GCSFileStorage)(nil)
