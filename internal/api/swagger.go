package api

import (
	"net/http"

	_ "sitesafe-engine-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "SiteSafe Engine API",
			"version":     s.config.Version,
			"description": "Risk scoring and alert aggregation engine for construction-site safety signals",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":  "/health",
				"info":    "/",
				"workers": "/workers",
				"uploads": "/uploads",
				"alerts":  "/alerts",
			},
			"engine_id": s.config.EngineID,
			"port":      s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
