package remote

import (
	"context"
	"time"

	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"
)

type meetingAssistRemoteClient struct {
	client *Client
}

func NewMeetingAssistRemoteClient(client *Client) contracts.MeetingAssistDataClient {
	return &meetingAssistRemoteClient{client: client}
}

func (c *meetingAssistRemoteClient) FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	var meetings []models.MeetingAssist
	err := c.client.Query(ctx, constvars.ResourceMeetingAssist, map[string]string{"id": meetingID}, &meetings)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, exceptions.ErrMeetingAssistNotFound(nil)
	}
	return &meetings[0], nil
}

func (c *meetingAssistRemoteClient) FindMeetingAssistsByOriginalID(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error) {
	var meetings []models.MeetingAssist
	err := c.client.Query(ctx, constvars.ResourceMeetingAssist, map[string]string{"originalMeetingId": originalMeetingID}, &meetings)
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (c *meetingAssistRemoteClient) FindMeetingAssistsByUserID(ctx context.Context, userID string) ([]models.MeetingAssist, error) {
	var meetings []models.MeetingAssist
	err := c.client.Query(ctx, constvars.ResourceMeetingAssist, map[string]string{"userId": userID}, &meetings)
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (c *meetingAssistRemoteClient) FindActiveRecurringTemplates(ctx context.Context, until time.Time) ([]models.MeetingAssist, error) {
	var meetings []models.MeetingAssist
	filters := map[string]string{
		"cancelled":   "false",
		"recurring":   "true",
		"until_after": until.UTC().Format(time.RFC3339),
	}
	err := c.client.Query(ctx, constvars.ResourceMeetingAssist, filters, &meetings)
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (c *meetingAssistRemoteClient) CreateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error) {
	created, err := c.CreateMeetingAssists(ctx, []models.MeetingAssist{*meeting})
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return meeting, nil
	}
	return &created[0], nil
}

func (c *meetingAssistRemoteClient) CreateMeetingAssists(ctx context.Context, meetings []models.MeetingAssist) ([]models.MeetingAssist, error) {
	var created []models.MeetingAssist
	err := c.client.Upsert(ctx, constvars.ResourceMeetingAssist, meetings, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *meetingAssistRemoteClient) UpdateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error) {
	return c.CreateMeetingAssist(ctx, meeting)
}
