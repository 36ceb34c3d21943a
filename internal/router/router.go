package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appLogger "github.com/FACorreiaa/tailcircle-api/app/logger"
	"github.com/FACorreiaa/tailcircle-api/internal/api/entitlements"
	"github.com/FACorreiaa/tailcircle-api/internal/api/feed"

	_ "github.com/FACorreiaa/tailcircle-api/docs"
)

var defaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Config contains dependencies needed for the router setup
type Config struct {
	Logger                 *slog.Logger
	FeedHandler            *feed.HandlerImpl
	EntitlementsHandler    *entitlements.HandlerImpl
	AuthenticateMiddleware func(http.Handler) http.Handler
	AllowedOrigins         []string
	Timeout                time.Duration
}

// SetupRouter builds the full HTTP handler: server-wide middleware, public
// routes and the authenticated /api/v1 group.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	if cfg.Timeout > 0 {
		r.Use(middleware.Timeout(cfg.Timeout))
	}
	r.Use(middleware.Compress(5, "application/json"))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Get("/feed", cfg.FeedHandler.GetFeed)
			r.Get("/entitlements", cfg.EntitlementsHandler.GetEntitlements)
			r.Post("/swipes", cfg.EntitlementsHandler.RecordSwipe)
		})
	})

	return r
}
