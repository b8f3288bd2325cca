package constvars

const (
	CreateMeetingAssistSuccessMessage = "Successfully created meeting assist"
	GetMeetingAssistSuccessMessage    = "Successfully retrieved meeting assist data"
	CancelMeetingAssistSuccessMessage = "Successfully cancelled meeting assist"
	GetAvailabilitySuccessMessage     = "Successfully computed available time slots"
)
