package wire

import (
	"net/http"

	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/internal/usecase"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds a composed router ready to be served.
type App struct {
	Router *chi.Mux
}

// Wiring builds the public API.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger, config.App.Debug)

	r := newRouter(utils.ServicePublic, config, logger)
	wireUser(r, handler)
	wireCatalogAdmin(r, handler, config, logger)

	return &App{Router: r}
}

// WiringAdmin builds the admin API. Every domain route requires the admin key.
func WiringAdmin(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewAdminHandler(service, logger, config.App.Debug)

	r := newRouter(utils.ServiceAdmin, config, logger)
	wireAdmin(r, handler, config, logger)

	return &App{Router: r}
}

// newRouter applies the middleware shared by both services.
func newRouter(service string, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(service, logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.AllowedOrigins))
	r.Use(chimiddleware.ThrottleBacklog(config.HTTP.MaxInFlight, config.HTTP.Backlog, config.HTTP.BacklogTimeout))
	r.Use(chimiddleware.RequestSize(config.HTTP.MaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK")
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
