package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Client speaks the data-store's generic query/mutation protocol. Every
// resource is addressed by name and filtered by opaque string ids; the
// caller supplies the record type to decode into.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

type queryRequest struct {
	Resource string            `json:"resource"`
	Filters  map[string]string `json:"filters,omitempty"`
}

type mutationRequest struct {
	Resource  string      `json:"resource"`
	Operation string      `json:"operation"`
	Records   interface{} `json:"records"`
}

type envelope struct {
	Records json.RawMessage `json:"records"`
	Error   string          `json:"error,omitempty"`
}

// Query fetches records of one resource matching the given filters and
// decodes them into out, which must be a pointer to a slice.
func (c *Client) Query(ctx context.Context, resource string, filters map[string]string, out interface{}) error {
	body, err := c.post(ctx, "/query", queryRequest{Resource: resource, Filters: filters}, resource, exceptions.ErrDatastoreQuery)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return exceptions.ErrDatastoreDecodeResponse(err, resource)
	}
	return nil
}

// Upsert writes records of one resource and decodes the persisted rows,
// ids filled in, back into out.
func (c *Client) Upsert(ctx context.Context, resource string, records interface{}, out interface{}) error {
	body, err := c.post(ctx, "/mutation", mutationRequest{Resource: resource, Operation: "upsert", Records: records}, resource, exceptions.ErrDatastoreMutation)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return exceptions.ErrDatastoreDecodeResponse(err, resource)
	}
	return nil
}

// post retries transient upstream failures before giving up. Marshal and
// request-building errors are never retried.
func (c *Client) post(
	ctx context.Context,
	path string,
	payload interface{},
	resource string,
	buildErr func(error, string) *exceptions.CustomError,
) (json.RawMessage, error) {
	const postMaxAttempts = 3
	const postRetryDelay = 100 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < postMaxAttempts; attempt++ {
		body, err := c.doPost(ctx, path, payload, resource, buildErr)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !exceptions.IsHTTPErrRetryable(err) || attempt == postMaxAttempts-1 {
			return nil, err
		}
		time.Sleep(postRetryDelay)
	}
	return nil, lastErr
}

func (c *Client) doPost(
	ctx context.Context,
	path string,
	payload interface{},
	resource string,
	buildErr func(error, string) *exceptions.CustomError,
) (json.RawMessage, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL+path, bytes.NewReader(requestBody))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, buildErr(err, resource)
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return nil, exceptions.ErrDatastoreDecodeResponse(err, resource)
	}

	if resp.StatusCode != constvars.StatusOK {
		if env.Error != "" {
			return nil, buildErr(fmt.Errorf("%s", env.Error), resource)
		}
		return nil, buildErr(fmt.Errorf("unexpected status %d", resp.StatusCode), resource)
	}

	return env.Records, nil
}
