package router

import (
	"time"

	"growthpro/config"
	"growthpro/internal/handler"
	"growthpro/internal/middleware"
	"growthpro/internal/repository"
	"growthpro/internal/service"
	"growthpro/internal/templates"
	"growthpro/pkg/dispatch"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, dispatcher dispatch.Provider) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Services
	referralSvc := service.NewReferralService(referralRepo, cfg.Referral.LinkBaseURL)
	dashboardSvc := service.NewDashboardService(customerRepo, referralRepo, interactionRepo)
	messagingSvc := service.NewMessagingService(
		db, customerRepo, interactionRepo, dispatcher,
		cfg.Messaging.DefaultPlatform, cfg.Messaging.MaxBulkRecipients,
	)

	catalog := templates.Merge(templates.Default(), cfg.Messaging.TemplateOverrides)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo, interactionRepo)
	referralHandler := handler.NewReferralHandler(referralRepo, referralSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	messagingHandler := handler.NewMessagingHandler(messagingSvc, catalog)

	users := r.Group("/users")
	{
		users.POST("/", userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
	}

	customers := r.Group("/customers")
	{
		customers.POST("/", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.GET("/search", customerHandler.Search)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
		customers.POST("/:id/contact", customerHandler.Contact)
		customers.GET("/:id/interactions", customerHandler.Interactions)
	}

	referrals := r.Group("/referrals")
	{
		referrals.POST("/", referralHandler.Create)
		referrals.GET("/", referralHandler.List)
		referrals.GET("/stats", referralHandler.Stats)
		referrals.GET("/rewards", referralHandler.Rewards)
		referrals.GET("/link/:user_id", referralHandler.Link)
		referrals.PUT("/:id", referralHandler.Update)
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/", dashboardHandler.Summary)
		dashboard.GET("/reports", dashboardHandler.Report)
	}

	messaging := r.Group("/messaging")
	{
		messaging.POST("/send", messagingHandler.Send)
		messaging.POST("/bulk-message", messagingHandler.Bulk)
		messaging.GET("/conversations/:customer_id", messagingHandler.Conversation)
		messaging.POST("/schedule-message", messagingHandler.Schedule)
		messaging.GET("/message-templates", messagingHandler.Templates)
		messaging.GET("/analytics/:user_id", messagingHandler.Analytics)
	}

	return r
}
