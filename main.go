package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frushh/config"
	_ "frushh/docs"
	"frushh/middleware"
	"frushh/routes"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title Frushh Checkout API
// @version 1.0
// @description Cart pricing, discounts and order placement for the Frushh storefront.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	shutdownTracing := config.SetupTracing()

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectRedis()
	defer config.CloseRedis()

	logger := config.NewLogger()

	config.SeedCatalog(logger)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, config.DB, config.RedisClient, logger)

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.Port,
		Handler:           otelhttp.NewHandler(router, config.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", srv.Addr)
		log.Printf("Environment: %s", config.AppConfig.AppEnv)
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Printf("Tracing shutdown: %v", err)
	}
}
