package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oskargbc/dws-wallet-service/internal/types"
)

// WalletChecker reports whether wallet API credentials are usable.
type WalletChecker interface {
	HealthCheck(ctx context.Context) error
}

// MessagingChecker reports whether the message broker is reachable.
type MessagingChecker interface {
	HealthCheck() error
}

type HealthController struct {
	walletService   WalletChecker
	rabbitmqService MessagingChecker
}

func NewHealthController(walletSvc WalletChecker, rmqSvc MessagingChecker) *HealthController {
	return &HealthController{
		walletService:   walletSvc,
		rabbitmqService: rmqSvc,
	}
}

func (h *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status: "healthy",
	})
}

func (h *HealthController) WalletHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.walletService.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, types.HealthResponse{
			Status: "unhealthy",
			Services: map[string]string{
				"wallet_api": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status: "healthy",
		Services: map[string]string{
			"wallet_api": "authenticated",
		},
	})
}

func (h *HealthController) RabbitMQHealth(c *gin.Context) {
	if err := h.rabbitmqService.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, types.HealthResponse{
			Status: "unhealthy",
			Services: map[string]string{
				"rabbitmq": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status: "healthy",
		Services: map[string]string{
			"rabbitmq": "connected",
		},
	})
}
