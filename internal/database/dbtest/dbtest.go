// Package dbtest opens throwaway in-memory SQLite databases with the
// storefront schema for repository and handler tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"storefront-backend/internal/config"
	"storefront-backend/internal/database"

	"gorm.io/driver/sqlite"
)

// New returns a migrated database private to t.
func New(t *testing.T) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	// A single connection serializes access; the in-memory database lives as
	// long as that connection does.
	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
