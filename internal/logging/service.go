package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/config"
)

func NewServiceLogger(cfg *config.Config, service string) zerolog.Logger {
	return log.With().Str("engine_id", cfg.EngineID).Str("service", service).Logger()
}

func WithSite(base zerolog.Logger, siteLocation string) zerolog.Logger {
	return base.With().Str("site_location", siteLocation).Logger()
}
