package routers

import (
	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/delivery/http/controllers"
	"meetingassist-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	meetingAssistController *controllers.MeetingAssistController,
	availabilityController *controllers.AvailabilityController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(accessLogger))
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/meeting-assists", func(r chi.Router) {
			attachMeetingAssistRoutes(r, meetingAssistController)
		})

		r.Route("/availability", func(r chi.Router) {
			attachAvailabilityRoutes(r, availabilityController)
		})
	})
}
