package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetingassist-service/internal/app/models"
)

func TestQueryRetriesTransientFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"upstream unavailable"}`))
			return
		}
		w.Write([]byte(`{"records":[{"id":"meeting-1"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var meetings []models.MeetingAssist
	err := client.Query(context.Background(), "meeting_assists", map[string]string{"id": "meeting-1"}, &meetings)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "meeting-1", meetings[0].ID)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls), "both transient failures are retried")
}

func TestQueryGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var meetings []models.MeetingAssist
	err := client.Query(context.Background(), "meeting_assists", nil, &meetings)
	require.Error(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}
