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

	"github.com/goccy/go-json"
)

type hostPreferencesClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewHostPreferencesClient(baseUrl string) contracts.HostPreferencesClient {
	return &hostPreferencesClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{},
	}
}

func (c *hostPreferencesClient) FindHostPreferencesByUserID(ctx context.Context, userID string) (*models.HostPreferences, error) {
	endpoint := fmt.Sprintf("%s/users/%s/preferences", c.BaseUrl, url.PathEscape(userID))

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

	if resp.StatusCode == constvars.StatusNotFound {
		// Hosts without stored preferences plan against the default
		// working day.
		return &models.HostPreferences{UserID: userID}, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrHostPreferencesFetch(readErr)
		}
		return nil, exceptions.ErrHostPreferencesFetch(fmt.Errorf("status %d: %s", resp.StatusCode, bodyBytes))
	}

	var preferences models.HostPreferences
	if err := json.NewDecoder(resp.Body).Decode(&preferences); err != nil {
		return nil, exceptions.ErrDatastoreDecodeResponse(err, constvars.ResourceHostPreferences)
	}
	return &preferences, nil
}
