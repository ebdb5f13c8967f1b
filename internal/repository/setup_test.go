package repository

import (
	"testing"

	"growthpro/internal/database"
	"growthpro/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory store. Single connection: the :memory:
// database is per-connection, so pooling would split state across tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, handle string) *models.User {
	t.Helper()
	u := &models.User{Name: "Owner " + handle, Handle: handle}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCustomer(t *testing.T, db *gorm.DB, userID uint, name string) *models.Customer {
	t.Helper()
	c := &models.Customer{UserID: userID, Name: name, ContactInfo: name + "@example.com"}
	require.NoError(t, db.Create(c).Error)
	return c
}
