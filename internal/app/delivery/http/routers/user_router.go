package routers

import (
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"
	"clinic-staff-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(middlewares.Authenticate)
	router.Get("/me", userController.GetProfile)
	router.Patch("/me/setup-account", userController.SetupAccount)
	router.Get("/doctors", userController.FindDoctors)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleAdmin))
		r.Get("/", userController.FindUsers)
		r.Post("/", userController.CreateUser)
	})
}
