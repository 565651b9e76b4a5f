package store

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// imageStorage keeps event images in a MinIO (S3 compatible) bucket.
type imageStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewImageStorage connects to the bucket described by cfg, creating it
// when missing.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
		log.Info().Str("func", "NewImageStorage").Str("bucket", cfg.Bucket).Msg("created image bucket")
	}

	return &imageStorage{client: client, bucket: cfg.Bucket, logger: log}, nil
}

// PutImage stores image under key.
func (s *imageStorage) PutImage(ctx context.Context, key string, image models.EventImage) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(image.Data), int64(len(image.Data)), minio.PutObjectOptions{
		ContentType: image.ContentType,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "imageStorage.PutImage").
			Str("key", key).
			Msg("failed to upload image")
		return fmt.Errorf("upload image: %w", err)
	}

	return nil
}

// GetImage opens the object stored under key. Missing objects yield
// [ErrImageNotFound].
func (s *imageStorage) GetImage(ctx context.Context, key string) (models.ImageObject, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return models.ImageObject{}, ErrImageNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "imageStorage.GetImage").
			Str("key", key).
			Msg("failed to stat image")
		return models.ImageObject{}, fmt.Errorf("stat image: %w", err)
	}

	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return models.ImageObject{}, fmt.Errorf("get image: %w", err)
	}

	return models.ImageObject{
		ContentType: info.ContentType,
		Size:        info.Size,
		Body:        object,
	}, nil
}

// noopImageStorage is used when no object storage is configured. Events
// can still be created, but without an image.
type noopImageStorage struct{}

// NewNoopImageStorage returns an [ImageStorage] that rejects every call.
func NewNoopImageStorage() ImageStorage {
	return noopImageStorage{}
}

func (noopImageStorage) PutImage(context.Context, string, models.EventImage) error {
	return ErrImageStorageDisabled
}

func (noopImageStorage) GetImage(context.Context, string) (models.ImageObject, error) {
	return models.ImageObject{}, ErrImageNotFound
}
