package middlewares

import (
	"log/slog"
	"net/http"
	"time"
	"user-collection-service/internal/infrastructure/logger"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func RequestLoggerMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info("request completed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("request_id", GetRequestID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
