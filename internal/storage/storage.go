// Package storage abstracts where uploaded binary assets live: a local
// directory or an S3-compatible bucket, selected once at startup. The
// rest of the application treats asset locators as opaque strings.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound indicates that the referenced object is not in the store.
var ErrNotFound = errors.New("storage: object not found")

type Store interface {
	// Put stores content under name and returns the locator to persist
	// alongside the owning record.
	Put(ctx context.Context, name string, content io.Reader, size int64, contentType string) (string, error)
	// Remove deletes the object a locator points to.
	Remove(ctx context.Context, locator string) error
	// PublicURL resolves a locator to a URL clients can fetch.
	PublicURL(locator string) string
}

// GenerateName produces a collision-resistant object name preserving the
// original file extension.
func GenerateName(original string) string {
	return uuid.New().String() + filepath.Ext(original)
}

// NewFromEnv builds the configured store. It fails fast on missing
// settings so a misconfigured process never starts serving.
func NewFromEnv() (Store, error) {
	driver := os.Getenv("STORAGE_DRIVER")

	switch driver {
	case "", "local":
		dir := os.Getenv("UPLOADS_DIR")
		if dir == "" {
			dir = "./uploads"
		}
		return NewLocalStore(dir, os.Getenv("ASSETS_BASE_URL"))
	case "s3":
		cfg := BucketConfig{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    os.Getenv("S3_BUCKET"),
			UseSSL:    os.Getenv("S3_USE_SSL") != "false",
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
		}
		return NewBucketStore(cfg)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
