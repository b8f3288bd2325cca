package availability

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/dto/requests"
)

type fakePreferencesClient struct {
	preferences models.HostPreferences
	calls       int
}

func (c *fakePreferencesClient) FindHostPreferencesByUserID(ctx context.Context, userID string) (*models.HostPreferences, error) {
	c.calls++
	preferences := c.preferences
	return &preferences, nil
}

type fakeCalendarClient struct {
	events []models.CalendarEvent
	calls  int
}

func (c *fakeCalendarClient) FindEventsWithinWindow(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]models.CalendarEvent, error) {
	c.calls++
	return c.events, nil
}

type fakeRedis struct {
	values map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (r *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(encoded)
	return nil
}

func (r *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := r.values[key]; ok {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

func slotsRequest() *requests.ListAvailableSlots {
	return &requests.ListAvailableSlots{
		HostID:          "9d4f2c9e-67a1-4f14-a9be-72cf81b7f7a0",
		UserID:          "3b7cd8a2-0c6e-4622-a2f0-4f6c7c3e9176",
		WindowStartDate: "2024-03-04T14:00:00Z",
		WindowEndDate:   "2024-03-04T17:00:00Z",
		SlotDuration:    30,
		HostTimezone:    "UTC",
		UserTimezone:    "UTC",
	}
}

func TestListAvailableSlots(t *testing.T) {
	logger := zap.NewNop()
	preferences := &fakePreferencesClient{preferences: weekdayPrefs(9, 17)}
	calendar := &fakeCalendarClient{
		events: []models.CalendarEvent{
			{ID: "event-1", StartDate: utc(2024, time.March, 4, 15, 0), EndDate: utc(2024, time.March, 4, 15, 30)},
			{ID: "event-2", StartDate: utc(2024, time.March, 4, 16, 0), EndDate: utc(2024, time.March, 4, 16, 30), Transparency: models.TransparencyTransparent},
		},
	}
	cache := newFakeRedis()

	cfg := &config.InternalConfig{}
	cfg.MeetingAssist.AvailabilityCacheTTLInSeconds = 60

	usecase := NewAvailabilityUsecase(preferences, calendar, cache, testPlanner(), cfg, logger)

	response, err := usecase.ListAvailableSlots(context.Background(), slotsRequest())
	require.NoError(t, err)

	require.Len(t, response.Slots, 5, "the opaque event blocks one slot, the transparent one none")
	starts := make([]time.Time, 0, len(response.Slots))
	for _, slot := range response.Slots {
		starts = append(starts, slot.StartDate)
	}
	assert.NotContains(t, starts, utc(2024, time.March, 4, 15, 0))
	assert.Contains(t, starts, utc(2024, time.March, 4, 16, 0), "transparent events never block availability")

	require.Len(t, response.SlotsByDate, 1)
	assert.Len(t, response.SlotsByDate["2024-03-04"], 5)
}

func TestListAvailableSlotsUsesCache(t *testing.T) {
	logger := zap.NewNop()
	preferences := &fakePreferencesClient{preferences: weekdayPrefs(9, 17)}
	calendar := &fakeCalendarClient{}
	cache := newFakeRedis()

	cfg := &config.InternalConfig{}
	cfg.MeetingAssist.AvailabilityCacheTTLInSeconds = 60

	usecase := NewAvailabilityUsecase(preferences, calendar, cache, testPlanner(), cfg, logger)

	first, err := usecase.ListAvailableSlots(context.Background(), slotsRequest())
	require.NoError(t, err)
	second, err := usecase.ListAvailableSlots(context.Background(), slotsRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, calendar.calls, "second call is served from the cache")
	assert.Equal(t, 1, preferences.calls)
	require.Equal(t, len(first.Slots), len(second.Slots))
	for i := range first.Slots {
		assert.True(t, first.Slots[i].StartDate.Equal(second.Slots[i].StartDate))
	}
}

func TestListAvailableSlotsRejectsBadTimestamps(t *testing.T) {
	cfg := &config.InternalConfig{}
	usecase := NewAvailabilityUsecase(&fakePreferencesClient{}, &fakeCalendarClient{}, newFakeRedis(), testPlanner(), cfg, zap.NewNop())

	request := slotsRequest()
	request.WindowStartDate = "not-a-timestamp"

	_, err := usecase.ListAvailableSlots(context.Background(), request)
	assert.Error(t, err)
}
