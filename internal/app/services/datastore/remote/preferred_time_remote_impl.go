package remote

import (
	"context"

	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
)

type preferredTimeRemoteClient struct {
	client *Client
}

func NewPreferredTimeRemoteClient(client *Client) contracts.PreferredTimeDataClient {
	return &preferredTimeRemoteClient{client: client}
}

func (c *preferredTimeRemoteClient) FindPreferredTimesByMeetingID(ctx context.Context, meetingID string) ([]models.PreferredTimeRange, error) {
	var ranges []models.PreferredTimeRange
	err := c.client.Query(ctx, constvars.ResourcePreferredTimeRange, map[string]string{"meetingId": meetingID}, &ranges)
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (c *preferredTimeRemoteClient) CreatePreferredTimes(ctx context.Context, ranges []models.PreferredTimeRange) ([]models.PreferredTimeRange, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	var created []models.PreferredTimeRange
	err := c.client.Upsert(ctx, constvars.ResourcePreferredTimeRange, ranges, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}
