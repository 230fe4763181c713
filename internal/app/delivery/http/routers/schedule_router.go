package routers

import (
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Get("/time-slots", scheduleController.GetTimeSlots)
	router.With(middlewares.Authenticate).Get("/availability", scheduleController.GetAvailability)
	router.With(middlewares.Authenticate).Get("/doctors/availability", scheduleController.GetDoctorsAvailability)
}

// Doctor role checks for these routes live in the schedule usecase since the
// doctor role set is open ended.
func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Use(middlewares.Authenticate)
	router.Get("/default-time-slots", scheduleController.GetDefaultTimeSlots)
	router.Post("/default-time-slots", scheduleController.SaveDefaultTimeSlots)
	router.Get("/daytime-slots", scheduleController.GetDaytimeSlots)
	router.Post("/daytime-slots", scheduleController.SaveDaytimeSlots)
}
