package responses

import "meetingassist-service/internal/app/models"

// CreateMeetingAssistResponse reports the persisted template plus everything
// recurrence expansion produced for it.
type CreateMeetingAssistResponse struct {
	Meeting            models.MeetingAssist        `json:"meeting"`
	GeneratedMeetings  []models.MeetingAssist      `json:"generatedMeetings,omitempty"`
	GeneratedAttendees []models.Attendee           `json:"generatedAttendees,omitempty"`
	GeneratedPreferred []models.PreferredTimeRange `json:"generatedPreferredTimes,omitempty"`
	ExpansionWarning   string                      `json:"expansionWarning,omitempty"`
}
