package routers

import (
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"
	"clinic-staff-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", appointmentController.FindAll)
	router.With(middlewares.RequireRoles(constvars.RoleNurse, constvars.RoleAdmin)).Post("/", appointmentController.Create)
	router.Patch("/", appointmentController.Update)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Patch("/{appointmentID}", appointmentController.Update)
	router.Post("/{appointmentID}/done", appointmentController.MarkDone)
	router.Post("/{appointmentID}/cancel", appointmentController.Cancel)
}
