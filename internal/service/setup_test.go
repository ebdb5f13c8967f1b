package service

import (
	"context"
	"testing"

	"growthpro/internal/database"
	"growthpro/internal/models"
	"growthpro/pkg/dispatch"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
	c := &models.Customer{UserID: userID, Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedReferral(t *testing.T, db *gorm.DB, userID uint, status string, points int) *models.Referral {
	t.Helper()
	r := &models.Referral{UserID: userID, Status: status, RewardPoints: points, ReferredBy: "test"}
	require.NoError(t, db.Create(r).Error)
	return r
}

// nopDispatcher keeps test logs quiet; delivery is out of scope here.
type nopDispatcher struct{}

func (nopDispatcher) Enqueue(ctx context.Context, job dispatch.Job) error { return nil }
