package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitesafe-engine-go/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	EngineID string `json:"engine_id" example:"engine-1"`
}

type EngineInfoResponse struct {
	EngineID     string   `json:"engine_id" example:"engine-1"`
	Status       string   `json:"status" example:"running"`
	Version      string   `json:"version" example:"1.0.0"`
	Capabilities []string `json:"capabilities"`
}

// @Summary Health check
// @Description Check if the engine is healthy and responsive
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		EngineID: h.cfg.EngineID,
	})
}

// @Summary Engine information
// @Description Get basic engine information and capabilities
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} EngineInfoResponse
// @Router / [get]
func (h *HealthHandler) EngineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, EngineInfoResponse{
		EngineID: h.cfg.EngineID,
		Status:   "running",
		Version:  h.cfg.Version,
		Capabilities: []string{
			"risk_scoring",
			"ppe_classification",
			"alert_feed",
		},
	})
}
