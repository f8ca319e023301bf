package controller

import (
	"net/http"

	"github.com/adexaja/trade-analysis-ai/config"
	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	cfg *config.ConfigManager
}

func NewHealthController(cfg *config.ConfigManager) *HealthController {
	return &HealthController{cfg: cfg}
}

// RegisterRoutes resolves to /api/health under the /api group.
func (ctrl *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctrl.healthCheck)
	router.HEAD("/health", ctrl.healthCheck)
}

// healthCheck reports liveness and which generation backend is configured.
// No upstream is called.
func (ctrl *HealthController) healthCheck(c *gin.Context) {
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}

	cfg := ctrl.cfg.GetConfig()
	c.JSON(http.StatusOK, model.HealthStatus{
		Status:     "ok",
		Provider:   cfg.LLM.Provider,
		Model:      cfg.LLM.Model,
		MarketData: cfg.MarketData.Enabled,
		SchemaMode: cfg.SchemaMode,
	})
}
