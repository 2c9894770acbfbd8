package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalogAdmin mounts catalog management on the public service. The
// group is open unless PROTECT_CATALOG_ADMIN is set.
func wireCatalogAdmin(r chi.Router, handler *adaptor.Handler, config *utils.Config, log *zap.Logger) {
	r.Route("/admin", func(r chi.Router) {
		if config.Admin.ProtectCatalog {
			r.Use(middleware.AdminKey(config.Admin.Key, log))
		}

		r.Post("/create-category", handler.Category.CreateCategory)
		r.Get("/categories", handler.Category.GetCategories)
		r.Post("/create-movie", handler.Movie.CreateMovie)
	})
}
