package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, handler *adaptor.AdminHandler, config *utils.Config, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin.Key, log))

		r.Post("/create-member", handler.Member.CreateMember)
		r.Get("/users", handler.Member.GetUsers)

		r.Post("/set-escalation-time", handler.Escalation.SetEscalationTime)
		r.Get("/escalation-settings", handler.Escalation.GetEscalationSettings)
	})
}
