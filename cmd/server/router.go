package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mmynk/adisyon/internal/auth"
	"github.com/mmynk/adisyon/internal/metrics"
	"github.com/mmynk/adisyon/internal/middleware"
	"github.com/mmynk/adisyon/internal/service"
	"github.com/mmynk/adisyon/internal/session"
	"github.com/mmynk/adisyon/pkg/api/apiconnect"
)

// routerDeps are the pieces the HTTP surface is built from.
type routerDeps struct {
	cafe          *session.Controller
	authenticator auth.Authenticator
	users         auth.UserStorage
	jwtManager    *auth.JWTManager
	metrics       *metrics.Metrics
}

// newRouter mounts the Connect services, /health and /metrics.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS for browser access
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			"Connect-Protocol-Version", "Connect-Timeout-Ms",
		},
		ExposedHeaders:   []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging := middleware.LoggingInterceptor(deps.metrics)

	posPath, posHandler := apiconnect.NewPosServiceHandler(
		service.NewPosService(deps.cafe),
		connect.WithInterceptors(logging),
	)
	adminPath, adminHandler := apiconnect.NewAdminServiceHandler(
		service.NewAdminService(deps.cafe),
		connect.WithInterceptors(logging, middleware.RequireAuth(deps.jwtManager)),
	)
	authPath, authHandler := apiconnect.NewAuthServiceHandler(
		service.NewAuthService(deps.authenticator, deps.jwtManager, deps.users, slog.Default()),
		connect.WithInterceptors(logging, middleware.OptionalAuth(deps.jwtManager)),
	)

	r.Handle(posPath+"*", posHandler)
	r.Handle(adminPath+"*", adminHandler)
	r.Handle(authPath+"*", authHandler)

	r.Get("/health", healthHandler(deps.cafe))
	r.Handle("/metrics", deps.metrics.Handler())

	return r
}

func healthHandler(cafe *session.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":     "ok",
			"tables":     len(cafe.Tables()),
			"menu_items": len(cafe.Menu()),
		})
	}
}

// requestLogger logs all incoming requests.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chimiddleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
