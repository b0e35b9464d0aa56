package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/oskargbc/dws-wallet-service/configs"
	"github.com/oskargbc/dws-wallet-service/internal/controllers/health"
	"github.com/oskargbc/dws-wallet-service/internal/controllers/passes"
	"github.com/oskargbc/dws-wallet-service/internal/middlewares"
	"github.com/oskargbc/dws-wallet-service/internal/pkg/metrics"
	"github.com/oskargbc/dws-wallet-service/internal/pkg/rabbitmq"
	"github.com/oskargbc/dws-wallet-service/internal/pkg/wallet"
	"github.com/oskargbc/dws-wallet-service/internal/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func SetupRouter(cfg *configs.Config, walletService *wallet.Service, rmqService *rabbitmq.RabbitMQService) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(requestLogger())
	router.Use(metrics.PrometheusMiddleware("dws-wallet-service"))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: true,
	}
	router.Use(cors.New(corsConfig))

	// Initialize controllers
	healthController := health.NewHealthController(walletService, rmqService)
	passesController := passes.NewPassesController(walletService, rmqService)

	// Issuance API
	router.POST("/create-ticket/", passesController.CreateTicket)

	// Operational routes
	healthGroup := router.Group("/health")
	{
		healthGroup.GET("", healthController.HealthCheck)
		healthGroup.GET("/wallet", healthController.WalletHealth)
		healthGroup.GET("/rabbitmq", healthController.RabbitMQHealth)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Everything else gets the documented 404 body. Only the issuance API
	// is advertised; the operational routes stay unlisted.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.NotFoundResponse{
			Error:              "Not Found",
			Message:            "The requested resource was not found.",
			AvailableEndpoints: []string{"/create-ticket/ (POST)"},
		})
	})

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"request_id": c.GetString("request_id"),
		}).Info("Request processed")
	}
}
