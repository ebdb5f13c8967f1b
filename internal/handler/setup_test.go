package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"growthpro/internal/database"
	"growthpro/internal/domain"
	"growthpro/internal/models"
	"growthpro/internal/repository"
	"growthpro/internal/service"
	"growthpro/internal/templates"
	"growthpro/pkg/dispatch"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopDispatcher struct{}

func (nopDispatcher) Enqueue(ctx context.Context, job dispatch.Job) error { return nil }

type testEnv struct {
	db     *gorm.DB
	engine *gin.Engine
}

// newTestEnv wires the full handler stack over an in-memory store,
// mirroring the production route table.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	referralSvc := service.NewReferralService(referralRepo, "https://growthpro.app")
	dashboardSvc := service.NewDashboardService(customerRepo, referralRepo, interactionRepo)
	messagingSvc := service.NewMessagingService(db, customerRepo, interactionRepo, nopDispatcher{}, domain.PlatformWhatsApp, 200)

	userHandler := NewUserHandler(userRepo)
	customerHandler := NewCustomerHandler(customerRepo, interactionRepo)
	referralHandler := NewReferralHandler(referralRepo, referralSvc)
	dashboardHandler := NewDashboardHandler(dashboardSvc)
	messagingHandler := NewMessagingHandler(messagingSvc, templates.Default())

	r := gin.New()
	users := r.Group("/users")
	users.POST("/", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)

	customers := r.Group("/customers")
	customers.POST("/", customerHandler.Create)
	customers.GET("/", customerHandler.List)
	customers.GET("/search", customerHandler.Search)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)
	customers.POST("/:id/contact", customerHandler.Contact)
	customers.GET("/:id/interactions", customerHandler.Interactions)

	referrals := r.Group("/referrals")
	referrals.POST("/", referralHandler.Create)
	referrals.GET("/", referralHandler.List)
	referrals.GET("/stats", referralHandler.Stats)
	referrals.GET("/rewards", referralHandler.Rewards)
	referrals.GET("/link/:user_id", referralHandler.Link)
	referrals.PUT("/:id", referralHandler.Update)

	dashboard := r.Group("/dashboard")
	dashboard.GET("/", dashboardHandler.Summary)
	dashboard.GET("/reports", dashboardHandler.Report)

	messaging := r.Group("/messaging")
	messaging.POST("/send", messagingHandler.Send)
	messaging.POST("/bulk-message", messagingHandler.Bulk)
	messaging.GET("/conversations/:customer_id", messagingHandler.Conversation)
	messaging.POST("/schedule-message", messagingHandler.Schedule)
	messaging.GET("/message-templates", messagingHandler.Templates)
	messaging.GET("/analytics/:user_id", messagingHandler.Analytics)

	return &testEnv{db: db, engine: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func (e *testEnv) seedUser(t *testing.T, handle string) *models.User {
	t.Helper()
	u := &models.User{Name: "Owner " + handle, Handle: handle}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) seedCustomer(t *testing.T, userID uint, name string) *models.Customer {
	t.Helper()
	c := &models.Customer{UserID: userID, Name: name}
	require.NoError(t, e.db.Create(c).Error)
	return c
}

func (e *testEnv) seedReferral(t *testing.T, userID uint, status string, points int) *models.Referral {
	t.Helper()
	ref := &models.Referral{UserID: userID, Status: status, RewardPoints: points}
	require.NoError(t, e.db.Create(ref).Error)
	return ref
}
