package calendarprovider

import (
	"context"
	"fmt"
	"io"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

type calendarEventClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewCalendarEventClient(baseUrl string) contracts.CalendarEventClient {
	return &calendarEventClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{},
	}
}

// FindEventsWithinWindow lists a user's calendar events intersecting the
// window. The provider returns event times already converted to the user's
// timezone.
func (c *calendarEventClient) FindEventsWithinWindow(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.CalendarEvent, error) {
	endpoint := fmt.Sprintf("%s/users/%s/events?start=%s&end=%s",
		c.BaseUrl,
		url.PathEscape(userID),
		url.QueryEscape(windowStart.Format(time.RFC3339)),
		url.QueryEscape(windowEnd.Format(time.RFC3339)),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrCalendarListEvents(readErr)
		}
		return nil, exceptions.ErrCalendarListEvents(fmt.Errorf("status %d: %s", resp.StatusCode, bodyBytes))
	}

	var result struct {
		Events []models.CalendarEvent `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDatastoreDecodeResponse(err, constvars.ResourceCalendarEvent)
	}
	return result.Events, nil
}
