package contracts

import (
	"context"
	"time"

	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/dto/requests"
	"meetingassist-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	ListAvailableSlots(ctx context.Context, request *requests.ListAvailableSlots) (*responses.AvailableSlotsResponse, error)
}

type HostPreferencesClient interface {
	FindHostPreferencesByUserID(ctx context.Context, userID string) (*models.HostPreferences, error)
}

type CalendarEventClient interface {
	FindEventsWithinWindow(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.CalendarEvent, error)
}
