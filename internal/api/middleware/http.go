package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"xgrowth-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type ginContextKey struct{}

var bridgeSeq atomic.Int64

// FromHTTP runs a net/http middleware inside a gin chain. The wrapped handler
// is built once so stateful middleware (rate limiters) keep their state.
// When the middleware does not call its next handler the gin chain is aborted.
func FromHTTP(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	passed := fmt.Sprintf("middleware.passed.%d", bridgeSeq.Add(1))

	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		c := r.Context().Value(ginContextKey{}).(*gin.Context)
		c.Set(passed, true)
		c.Request = r
		c.Next()
	}))

	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), ginContextKey{}, c)
		handler.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
		if !c.GetBool(passed) {
			c.Abort()
		}
	}
}

// CORS applies go-chi/cors with the configured origins. Development allows any origin.
func CORS(cfg *config.Config) gin.HandlerFunc {
	options := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if cfg.IsDevelopment() && len(cfg.AllowedOrigins) == 0 {
		options.AllowedOrigins = []string{"*"}
		options.AllowCredentials = false
	}
	return FromHTTP(cors.Handler(options))
}

// RateLimit limits each client IP to perMinute requests per minute
func RateLimit(perMinute int) gin.HandlerFunc {
	return FromHTTP(httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
		}),
	))
}
