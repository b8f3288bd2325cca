package routers

import (
	"meetingassist-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMeetingAssistRoutes(r chi.Router, controller *controllers.MeetingAssistController) {
	r.Post("/", controller.Create)
	r.Get("/", controller.FindByHost)
	r.Get("/{meetingID}", controller.FindByID)
	r.Get("/{meetingID}/generated", controller.FindGenerated)
	r.Post("/{meetingID}/cancel", controller.Cancel)
}
