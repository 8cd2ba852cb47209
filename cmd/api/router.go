package main

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crucial707/codepad/internal/auth"
	"github.com/crucial707/codepad/internal/config"
	"github.com/crucial707/codepad/internal/db"
	"github.com/crucial707/codepad/internal/handlers"
	"github.com/crucial707/codepad/internal/middleware"
	"github.com/crucial707/codepad/internal/repo"
	"github.com/crucial707/codepad/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires repos, services and handlers onto a chi router.
func newRouter(database *sql.DB, cfg config.Config, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	tokens := auth.NewTokens([]byte(cfg.JWTSecret))
	users := repo.NewUserRepo(database)
	authSvc := service.NewAuthService(users, tokens)
	projectSvc := service.NewProjectService(repo.NewProjectRepo(database))

	authHandler := &handlers.AuthHandler{Auth: authSvc, Logger: logger}
	projectHandler := &handlers.ProjectHandler{Projects: projectSvc, Logger: logger}
	userHandler := &handlers.UserHandler{Repo: users, Logger: logger}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSEnabled()))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))

	// ==========================
	// Operational
	// ==========================
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context(), database); err != nil {
			logger.Warn("readiness check failed", "err", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// ==========================
	// Public
	// ==========================
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// ==========================
	// Protected
	// ==========================
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(authSvc))

		r.Get("/protected", authHandler.Protected)
		r.Get("/me", userHandler.Me)

		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/project", projectHandler.CreateProject)
		r.Get("/project/{id}", projectHandler.GetProject)
		r.Put("/project/{id}", projectHandler.UpdateProject)
		r.Delete("/project/{id}", projectHandler.DeleteProject)
	})

	return r
}
