package routers

import (
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, plannerController *controllers.PlannerController) {
	router.Post("/check", plannerController.Check)
	router.Post("/fits", plannerController.Fits)
	router.Get("/weekly", plannerController.Weekly)
	router.Post("/image", plannerController.Image)
}
