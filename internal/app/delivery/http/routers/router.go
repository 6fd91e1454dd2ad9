package routers

import (
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/controllers"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/middlewares"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	plannerController *controllers.PlannerController,
	classFileController *controllers.ClassFileController,
) {
	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.Limit(
		internalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(middlewares.TooManyRequests),
	)
	router.Use(rateLimiter)
	router.Use(middlewares.BodyLimit)

	router.NotFound(middlewares.NotFound)

	// The browser planner page calls these without a prefix.
	attachClassFileRoutes(router, classFileController)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/"+constvars.ResourceSchedule, func(r chi.Router) {
			attachScheduleRoutes(r, plannerController)
		})
	})
}
