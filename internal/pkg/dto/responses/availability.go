package responses

import "meetingassist-service/internal/app/models"

// AvailableSlotsResponse carries the flat ordered slot list plus the same
// slots grouped by host-local calendar date (YYYY-MM-DD keys).
type AvailableSlotsResponse struct {
	Slots       []models.TimeSlot            `json:"slots"`
	SlotsByDate map[string][]models.TimeSlot `json:"slotsByDate"`
}
