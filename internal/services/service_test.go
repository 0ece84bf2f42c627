package services

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yoones-dev/portfolio-api/db"
	"github.com/yoones-dev/portfolio-api/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	return database
}

func newTestStore(t *testing.T) (*storage.LocalStore, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "http://localhost:3000/uploads")
	require.NoError(t, err)

	return store, dir
}

func storedObjects(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func testAsset(content string) *UploadedAsset {
	return &UploadedAsset{
		Filename:    "icon.png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

// setCreatedAt backdates a record so ordering tests are deterministic.
func setCreatedAt(t *testing.T, database *gorm.DB, model interface{}, id uint, at time.Time) {
	t.Helper()
	require.NoError(t, database.Model(model).Where("id = ?", id).Update("created_at", at).Error)
}
