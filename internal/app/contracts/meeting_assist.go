package contracts

import (
	"context"
	"time"

	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/dto/requests"
	"meetingassist-service/internal/pkg/dto/responses"
)

type MeetingAssistUsecase interface {
	CreateMeetingAssist(ctx context.Context, request *requests.CreateMeetingAssist) (*responses.CreateMeetingAssistResponse, error)
	FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error)
	FindMeetingAssistsByHost(ctx context.Context, hostUserID string) ([]models.MeetingAssist, error)
	FindGeneratedMeetings(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error)
	CancelMeetingAssist(ctx context.Context, meetingID string) (*models.MeetingAssist, error)
}

type MeetingAssistDataClient interface {
	FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error)
	FindMeetingAssistsByOriginalID(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error)
	FindMeetingAssistsByUserID(ctx context.Context, userID string) ([]models.MeetingAssist, error)
	// FindActiveRecurringTemplates lists non-cancelled templates carrying a
	// recurrence rule whose until date has not yet passed.
	FindActiveRecurringTemplates(ctx context.Context, until time.Time) ([]models.MeetingAssist, error)
	CreateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error)
	CreateMeetingAssists(ctx context.Context, meetings []models.MeetingAssist) ([]models.MeetingAssist, error)
	UpdateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error)
}

type AttendeeDataClient interface {
	FindAttendeesByMeetingID(ctx context.Context, meetingID string) ([]models.Attendee, error)
	CreateAttendees(ctx context.Context, attendees []models.Attendee) ([]models.Attendee, error)
}

type PreferredTimeDataClient interface {
	FindPreferredTimesByMeetingID(ctx context.Context, meetingID string) ([]models.PreferredTimeRange, error)
	CreatePreferredTimes(ctx context.Context, ranges []models.PreferredTimeRange) ([]models.PreferredTimeRange, error)
}
