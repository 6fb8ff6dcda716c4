package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/jobboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/jobboard-api/internal/api/middleware"
	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/platform/metrics"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter builds the HTTP handler with middleware and every route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Middleware)

	api.RegisterRoutes(r, api.Dependencies{
		Store:         app.store,
		Accounts:      app.accounts,
		Jobs:          app.jobs,
		Resumes:       app.resumes,
		Auth:          apiMiddleware.NewAuthMiddleware(app.filter, app.metrics.ObserveAuthRejection),
		DefaultOffset: app.config.Pagination.DefaultOffset,
	})

	r.Get("/health", app.health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.gatherer))

	return r
}

// health reports liveness, and database reachability for the postgres backend.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	if app.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := app.db.PingContext(ctx); err != nil {
			app.logger.Warn("health check failed", slog.String("error", err.Error()))
			shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
