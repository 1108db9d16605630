package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/playshelf/playshelf/internal/infrastructure/http/handlers"
	"github.com/playshelf/playshelf/internal/infrastructure/http/middleware"
)

// RouterConfig bundles everything the router mounts.
type RouterConfig struct {
	AuthHandler   *handlers.AuthHandler
	GamesHandler  *handlers.GamesHandler
	HealthHandler *handlers.HealthHandler
	Sessions      *middleware.SessionResolver
	Log           zerolog.Logger
	Secure        func(http.Handler) http.Handler
	Metrics       bool // expose /metrics
}

// NewRouter assembles the chi router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(chimid.AllowContentType("application/json"))
		r.Post("/signup", cfg.AuthHandler.Signup)
		r.Post("/signin", cfg.AuthHandler.Signin)
		r.Post("/signout", cfg.AuthHandler.Signout)
		r.Post("/verify-email", cfg.AuthHandler.VerifyEmail)
		r.Post("/request-password-reset", cfg.AuthHandler.RequestPasswordReset)
		r.Post("/reset-password", cfg.AuthHandler.ResetPassword)
		// Routes that require a live session.
		r.Group(func(r chi.Router) {
			r.Use(cfg.Sessions.Require)
			r.Get("/me", cfg.AuthHandler.Me)
			r.Put("/me/preferences", cfg.AuthHandler.UpdatePreferences)
		})
	})

	if cfg.GamesHandler != nil {
		r.Route("/api/games", func(r chi.Router) {
			r.Use(cfg.Sessions.Optional)
			r.Get("/", cfg.GamesHandler.List)
			r.Get("/random", cfg.GamesHandler.Random)
			r.Get("/trending", cfg.GamesHandler.Trending)
		})
	}

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
