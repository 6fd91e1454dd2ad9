package routers

import (
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachClassFileRoutes(router chi.Router, classFileController *controllers.ClassFileController) {
	router.Get("/get_json_files", classFileController.ListJSONFiles)
	router.Post("/load_json", classFileController.LoadJSON)
}
