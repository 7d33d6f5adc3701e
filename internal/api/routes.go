package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.EngineInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)

	workers := s.router.Group("/workers")
	{
		workers.POST("/score", s.workersHandler.Score)
		workers.POST("/score/batch", s.workersHandler.ScoreBatch)
	}

	uploads := s.router.Group("/uploads")
	{
		uploads.POST("", s.uploadsHandler.ClassifyUpload)
		uploads.POST("/detections", s.uploadsHandler.ClassifyDetections)
	}

	alerts := s.router.Group("/alerts")
	{
		alerts.GET("", s.alertsHandler.List)
		alerts.GET("/stats", s.alertsHandler.Stats)
		alerts.POST("/reconcile", s.alertsHandler.Reconcile)
		alerts.GET("/ws", s.alertsHandler.Stream)
	}
}
