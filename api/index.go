package api

import (
	"net/http"
	"sync"

	"frushh/config"
	"frushh/middleware"
	"frushh/routes"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	handler http.Handler
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		config.LoadConfig()
		gin.SetMode(gin.ReleaseMode)

		config.SetupTracing()
		config.ConnectDB()
		config.ConnectRedis()

		router := gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, config.DB, config.RedisClient, config.NewLogger())
		handler = otelhttp.NewHandler(router, config.ServiceName)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	handler.ServeHTTP(w, r)
}
