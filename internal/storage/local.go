package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps assets in a directory on disk. Locators are the
// filename relative to that directory.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStore) Put(_ context.Context, name string, content io.Reader, size int64, _ string) (string, error) {
	// Locators come back from the database, so never let one escape the
	// uploads directory.
	name = filepath.Base(name)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if size > 0 && written != size {
		os.Remove(f.Name())
		return "", fmt.Errorf("short write: got %d bytes, want %d", written, size)
	}

	return name, nil
}

func (s *LocalStore) Remove(_ context.Context, locator string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(locator)))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

func (s *LocalStore) PublicURL(locator string) string {
	if s.baseURL == "" {
		return locator
	}
	return s.baseURL + "/" + locator
}
