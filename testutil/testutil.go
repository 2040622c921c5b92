package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/microblog/api-go/config"
)

// NewDB opens an isolated in-memory database with the full schema applied.
// The pool is pinned to one connection so every session sees the same
// in-memory store.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	return db
}

// SeedFixture loads the demo fixture: users 1-3, follow edges 3→1, 1→2 and
// 1→3, three tweets, and four likes (tweet 1 liked by users 2 and 3, tweet 2
// by users 1 and 3).
func SeedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, config.Seed(db))
}
