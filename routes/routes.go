package routes

import (
	"net/http"
	"time"

	"frushh/config"
	"frushh/controllers"
	"frushh/middleware"
	"frushh/repositories"
	"frushh/services"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires repositories, services and controllers onto router.
// rdb may be nil.
func SetupRoutes(router *gin.Engine, db repositories.DBTX, rdb *redis.Client, logger logr.Logger) {
	cfg := config.AppConfig

	catalogRepo := repositories.NewCachedCatalog(repositories.NewProductRepository(db), rdb, cfg.CatalogCacheTTL, logger)
	discountRepo := repositories.NewDiscountRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	loyaltyRepo := repositories.NewLoyaltyRepository(db)
	locker := repositories.NewRedisIdempotencyLocker(rdb, cfg.IdempotencyTTL)

	cartService := services.NewCartService(catalogRepo)
	discountService := services.NewDiscountService(discountRepo)
	customerService := services.NewCustomerService(customerRepo)
	authService := services.NewAuthService(customerRepo, discountRepo, loyaltyRepo, logger)
	orderService := services.NewOrderService(services.OrderDeps{
		Orders:    orderRepo,
		Discounts: discountRepo,
		Customers: customerRepo,
		Loyalty:   loyaltyRepo,
		Locker:    locker,
	}, cartService, discountService, customerService, services.OrderConfig{
		OrderPrefix:       cfg.OrderPrefix,
		BaseOrderPoints:   cfg.BaseOrderPoints,
		SideEffectRetries: uint(cfg.SideEffectRetries),
		RetryInterval:     200 * time.Millisecond,
		WhatsAppNumber:    cfg.WhatsAppNumber,
	}, logger)

	authCtrl := controllers.NewAuthController(authService)
	promoCtrl := controllers.NewPromoController(discountService)
	checkoutCtrl := controllers.NewCheckoutController(cartService, discountService, customerService, orderService)
	historyCtrl := controllers.NewHistoryController(orderService)
	orderCtrl := controllers.NewOrderController(orderService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/promos", promoCtrl.GetAllPromos)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/cart/price", checkoutCtrl.PriceCart)
		auth.POST("/checkout/discount", checkoutCtrl.ApplyDiscount)
		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.GET("/orders", historyCtrl.GetHistory)
		auth.GET("/orders/:number", historyCtrl.GetHistoryDetail)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:number", orderCtrl.GetOrderDetail)
		admin.PATCH("/orders/:number/status", orderCtrl.UpdateOrderStatus)
	}
}
