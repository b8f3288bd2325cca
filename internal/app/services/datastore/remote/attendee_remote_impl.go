package remote

import (
	"context"

	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
)

type attendeeRemoteClient struct {
	client *Client
}

func NewAttendeeRemoteClient(client *Client) contracts.AttendeeDataClient {
	return &attendeeRemoteClient{client: client}
}

func (c *attendeeRemoteClient) FindAttendeesByMeetingID(ctx context.Context, meetingID string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	err := c.client.Query(ctx, constvars.ResourceAttendee, map[string]string{"meetingId": meetingID}, &attendees)
	if err != nil {
		return nil, err
	}
	return attendees, nil
}

func (c *attendeeRemoteClient) CreateAttendees(ctx context.Context, attendees []models.Attendee) ([]models.Attendee, error) {
	if len(attendees) == 0 {
		return nil, nil
	}
	var created []models.Attendee
	err := c.client.Upsert(ctx, constvars.ResourceAttendee, attendees, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}
