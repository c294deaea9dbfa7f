package httpCors

import (
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"career-roadmap/config"
)

// CorsSettings builds the CORS policy for the JSON API from configuration.
func CorsSettings(cfg config.CORSConfig, log zerolog.Logger) *cors.Cors {
	c := cors.New(cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: cfg.AllowCredentials,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"X-Request-ID"},
		Debug:            cfg.Debug,
	})
	if cfg.Debug {
		c.Log = corsLogger{log: log.With().Str("component", "cors").Logger()}
	}
	return c
}

type corsLogger struct {
	log zerolog.Logger
}

func (l corsLogger) Printf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
