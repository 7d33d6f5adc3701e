package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/api/handlers"
	"sitesafe-engine-go/internal/config"
	"sitesafe-engine-go/internal/services"
)

type Server struct {
	config    *config.Config
	router    *gin.Engine
	server    *http.Server
	container *services.ServiceContainer

	healthHandler  *handlers.HealthHandler
	workersHandler *handlers.WorkersHandler
	uploadsHandler *handlers.UploadsHandler
	alertsHandler  *handlers.AlertsHandler
}

// NewServer builds the engine, its service container and the HTTP
// surface around it.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	container, err := services.NewServiceContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service container: %w", err)
	}

	s := &Server{
		config:         cfg,
		router:         gin.New(),
		container:      container,
		healthHandler:  handlers.NewHealthHandler(cfg),
		workersHandler: handlers.NewWorkersHandler(container),
		uploadsHandler: handlers.NewUploadsHandler(container),
		alertsHandler:  handlers.NewAlertsHandler(container),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.router,
	}

	return s, nil
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting SiteSafe engine API")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	return s.container.Shutdown(ctx)
}
