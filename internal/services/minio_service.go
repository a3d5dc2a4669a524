package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"storefront-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ObjectStorage is the blob store holding product images.
type ObjectStorage interface {
	Bucket() string
	PresignPut(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
	PublicURL(key string) string
}

type MinIOService struct {
	client        *minio.Client
	bucket        string
	publicURL     string
	presignExpiry time.Duration
	logger        *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + endpoint
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	service := &MinIOService{
		client:        minioClient,
		bucket:        cfg.BucketName,
		publicURL:     publicURL,
		presignExpiry: expiry,
		logger:        logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if region == "" {
			region = "us-east-1"
		}
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

func (s *MinIOService) Bucket() string {
	return s.bucket
}

func (s *MinIOService) PresignPut(ctx context.Context, key string) (string, error) {
	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, key, s.presignExpiry)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to generate presigned URL")
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":    key,
		"expiry": s.presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), nil
}

func (s *MinIOService) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to upload object")
		return fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":  key,
		"size": info.Size,
	}).Info("Object uploaded to MinIO")
	return nil
}

func (s *MinIOService) Remove(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, s.bucket+"/")

	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	s.logger.WithField("key", key).Info("Object deleted successfully from MinIO")
	return nil
}

func (s *MinIOService) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objects <- minio.ObjectInfo{Key: strings.TrimPrefix(key, s.bucket+"/")}
	}
	close(objects)

	var failed int
	var firstErr error
	for result := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		failed++
		if firstErr == nil {
			firstErr = result.Err
		}
		s.logger.WithError(result.Err).WithField("key", result.ObjectName).Error("Failed to delete object")
	}
	if firstErr != nil {
		return fmt.Errorf("failed to delete %d of %d objects: %w", failed, len(keys), firstErr)
	}

	s.logger.WithField("count", len(keys)).Info("Objects deleted successfully from MinIO")
	return nil
}

// PublicURL builds the address clients fetch an object from. Keys stored
// with a leading bucket segment are accepted.
func (s *MinIOService) PublicURL(key string) string {
	key = strings.TrimPrefix(key, s.bucket+"/")
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
}
