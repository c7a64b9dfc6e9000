package router

import (
	"time"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/config"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/handler"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/infra"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/middleware"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	sheetClient := infra.NewSheetClient()

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settings := repository.NewSettingsStore(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo)
	itemSvc := service.NewItemService(itemRepo)
	orderSvc := service.NewOrderService(orderRepo)
	submissionSvc := service.NewSubmissionService(settings, sheetClient, cfg.SheetWebhookURL)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	ordersH := handler.NewOrdersHandler(orderSvc, submissionSvc)
	settingsH := handler.NewSettingsHandler(settings)
	importsH := handler.NewImportsHandler(customerSvc, itemSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		v1.POST("/auth/ghost", authH.Ghost)
		v1.GET("/users", usersH.List)

		v1.GET("/customers", customersH.List)
		v1.POST("/customers", customersH.Create)
		v1.POST("/customers/bulk", customersH.BulkUpsert)
		v1.POST("/customers/seed", customersH.Seed)

		v1.GET("/items", itemsH.List)
		v1.POST("/items/bulk", itemsH.BulkUpsert)

		v1.POST("/orders", ordersH.Submit)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)

		v1.POST("/imports/customers", importsH.Customers)
		v1.POST("/imports/items", importsH.Items)
	}

	return r
}
