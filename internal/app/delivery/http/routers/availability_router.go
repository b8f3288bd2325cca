package routers

import (
	"meetingassist-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(r chi.Router, controller *controllers.AvailabilityController) {
	r.Get("/", controller.ListAvailableSlots)
}
