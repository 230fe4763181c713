package routers

import (
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"
	"clinic-staff-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSettingsRoutes(router chi.Router, middlewares *middlewares.Middlewares, settingsController *controllers.SettingsController) {
	router.Get("/", settingsController.GetSettings)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleAdmin)).Patch("/", settingsController.UpdateSettings)
}
