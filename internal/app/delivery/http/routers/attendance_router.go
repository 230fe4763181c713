package routers

import (
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"
	"clinic-staff-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAttendanceRoutes(router chi.Router, middlewares *middlewares.Middlewares, attendanceController *controllers.AttendanceController) {
	router.Use(middlewares.Authenticate)
	router.Post("/time-in", attendanceController.TimeIn)
	router.Post("/time-out", attendanceController.TimeOut)
	router.Get("/me", attendanceController.FindMine)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/", attendanceController.FindAll)
}
