package middleware

import (
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// CORS lets the browser form call the API from its own origin. With debug set,
// rs/cors decisions are logged through zap at debug level.
func CORS(allowedOrigins []string, debug bool) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}
	if debug {
		opts.Logger = corsLogger{zap.L().Sugar().Named("cors")}
	}
	return cors.New(opts).Handler
}

type corsLogger struct {
	log *zap.SugaredLogger
}

func (l corsLogger) Printf(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}
