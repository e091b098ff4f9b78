package services

import (
	"fmt"
	"testing"

	"github.com/smiggiddy/100daysofcode-blog/database"
	"github.com/smiggiddy/100daysofcode-blog/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB — чистая in-memory sqlite на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func registerUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user, err := NewAuthService(db).Register(name, email, "password123")
	require.NoError(t, err)
	return user
}
