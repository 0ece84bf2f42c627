package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the endpoint-derived base for generated
	// locators, e.g. a CDN in front of the bucket.
	PublicURL string
}

// BucketStore keeps assets in an S3-compatible bucket. Locators are
// absolute public URLs.
type BucketStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewBucketStore(cfg BucketConfig) (*BucketStore, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket storage requires S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY and S3_BUCKET")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to bucket storage: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &BucketStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

func (s *BucketStore) Put(ctx context.Context, name string, content io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

func (s *BucketStore) Remove(ctx context.Context, locator string) error {
	key := s.objectKey(locator)

	// S3 deletes are idempotent, so probe first to surface missing
	// objects to the caller.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrNotFound
		}
		return err
	}

	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *BucketStore) PublicURL(locator string) string {
	return locator
}

func (s *BucketStore) objectKey(locator string) string {
	if strings.HasPrefix(locator, s.baseURL+"/") {
		return strings.TrimPrefix(locator, s.baseURL+"/")
	}
	return locator
}
