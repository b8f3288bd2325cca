package meetingassists

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/app/services/core/projection"
	"meetingassist-service/internal/app/services/core/recurrence"
	"meetingassist-service/internal/pkg/dto/requests"
)

type fakeMeetingStore struct {
	meetings map[string]models.MeetingAssist
	order    []string
}

func newFakeMeetingStore() *fakeMeetingStore {
	return &fakeMeetingStore{meetings: make(map[string]models.MeetingAssist)}
}

func (s *fakeMeetingStore) FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	meeting, ok := s.meetings[meetingID]
	if !ok {
		return nil, fmt.Errorf("meeting %s not found", meetingID)
	}
	return &meeting, nil
}

func (s *fakeMeetingStore) FindMeetingAssistsByOriginalID(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error) {
	var out []models.MeetingAssist
	for _, id := range s.order {
		if s.meetings[id].OriginalMeetingID == originalMeetingID {
			out = append(out, s.meetings[id])
		}
	}
	return out, nil
}

func (s *fakeMeetingStore) FindMeetingAssistsByUserID(ctx context.Context, userID string) ([]models.MeetingAssist, error) {
	var out []models.MeetingAssist
	for _, id := range s.order {
		if s.meetings[id].UserID == userID {
			out = append(out, s.meetings[id])
		}
	}
	return out, nil
}

func (s *fakeMeetingStore) FindActiveRecurringTemplates(ctx context.Context, until time.Time) ([]models.MeetingAssist, error) {
	var out []models.MeetingAssist
	for _, id := range s.order {
		meeting := s.meetings[id]
		if meeting.HasRecurrenceRule() && !meeting.Cancelled && meeting.OriginalMeetingID == "" && !meeting.Until.Before(until) {
			out = append(out, meeting)
		}
	}
	return out, nil
}

func (s *fakeMeetingStore) CreateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error) {
	s.meetings[meeting.ID] = *meeting
	s.order = append(s.order, meeting.ID)
	return meeting, nil
}

func (s *fakeMeetingStore) CreateMeetingAssists(ctx context.Context, meetings []models.MeetingAssist) ([]models.MeetingAssist, error) {
	for _, meeting := range meetings {
		s.meetings[meeting.ID] = meeting
		s.order = append(s.order, meeting.ID)
	}
	return meetings, nil
}

func (s *fakeMeetingStore) UpdateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error) {
	if _, ok := s.meetings[meeting.ID]; !ok {
		return nil, fmt.Errorf("meeting %s not found", meeting.ID)
	}
	s.meetings[meeting.ID] = *meeting
	return meeting, nil
}

type fakeAttendeeStore struct {
	attendees []models.Attendee
}

func (s *fakeAttendeeStore) FindAttendeesByMeetingID(ctx context.Context, meetingID string) ([]models.Attendee, error) {
	var out []models.Attendee
	for _, attendee := range s.attendees {
		if attendee.MeetingID == meetingID {
			out = append(out, attendee)
		}
	}
	return out, nil
}

func (s *fakeAttendeeStore) CreateAttendees(ctx context.Context, attendees []models.Attendee) ([]models.Attendee, error) {
	s.attendees = append(s.attendees, attendees...)
	return attendees, nil
}

type fakePreferredStore struct {
	ranges []models.PreferredTimeRange
}

func (s *fakePreferredStore) FindPreferredTimesByMeetingID(ctx context.Context, meetingID string) ([]models.PreferredTimeRange, error) {
	var out []models.PreferredTimeRange
	for _, rng := range s.ranges {
		if rng.MeetingID == meetingID {
			out = append(out, rng)
		}
	}
	return out, nil
}

func (s *fakePreferredStore) CreatePreferredTimes(ctx context.Context, ranges []models.PreferredTimeRange) ([]models.PreferredTimeRange, error) {
	s.ranges = append(s.ranges, ranges...)
	return ranges, nil
}

type fakeLocker struct {
	denyAll  bool
	acquired []string
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if l.denyAll {
		return false, "", nil
	}
	l.acquired = append(l.acquired, key)
	return true, "lock-value", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error { return nil }

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type fakeQueue struct {
	published [][]string
}

func (q *fakeQueue) PublishMeetingExpanded(ctx context.Context, meetingID string, generatedIDs []string) error {
	q.published = append(q.published, append([]string{meetingID}, generatedIDs...))
	return nil
}

func (q *fakeQueue) Close() error { return nil }

type usecaseFixture struct {
	usecase   *MeetingAssistUsecase
	meetings  *fakeMeetingStore
	attendees *fakeAttendeeStore
	preferred *fakePreferredStore
	locker    *fakeLocker
	queue     *fakeQueue
}

func newUsecaseFixture() *usecaseFixture {
	logger := zap.NewNop()
	meetings := newFakeMeetingStore()
	attendees := &fakeAttendeeStore{}
	preferred := &fakePreferredStore{}
	locker := &fakeLocker{}
	queue := &fakeQueue{}

	cfg := &config.InternalConfig{}
	cfg.MeetingAssist.ExpansionLockTTLInSeconds = 120

	usecase := NewMeetingAssistUsecase(
		meetings, attendees, preferred, locker, queue,
		recurrence.NewExpander(logger, 0),
		projection.NewProjector(logger),
		cfg, logger,
	)
	usecase.now = func() time.Time {
		return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	n := 0
	usecase.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	return &usecaseFixture{
		usecase:   usecase,
		meetings:  meetings,
		attendees: attendees,
		preferred: preferred,
		locker:    locker,
		queue:     queue,
	}
}

func recurringCreateRequest() *requests.CreateMeetingAssist {
	frequency := "weekly"
	interval := 1
	until := "2024-01-22T00:00:00Z"
	weekday := 2
	return &requests.CreateMeetingAssist{
		UserID:          "3b7cd8a2-0c6e-4622-a2f0-4f6c7c3e9176",
		WindowStartDate: "2024-01-01T09:00:00Z",
		WindowEndDate:   "2024-01-01T10:00:00Z",
		Duration:        30,
		Timezone:        "America/New_York",
		Frequency:       &frequency,
		Interval:        &interval,
		Until:           &until,
		Attendees: []requests.CreateAttendee{
			{HostID: "9d4f2c9e-67a1-4f14-a9be-72cf81b7f7a0", Name: "First Attendee"},
			{HostID: "9d4f2c9e-67a1-4f14-a9be-72cf81b7f7a0", Name: "Second Attendee", Timezone: "Asia/Tokyo"},
		},
		PreferredTimes: []requests.CreatePreferredTimeRange{
			{AttendeeIndex: 0, StartTime: "09:00", EndTime: "12:00", DayOfWeek: &weekday},
		},
	}
}

func TestCreateMeetingAssistWithRecurrence(t *testing.T) {
	fixture := newUsecaseFixture()

	response, err := fixture.usecase.CreateMeetingAssist(context.Background(), recurringCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, response.Meeting.Priority, "priority defaults to base")
	require.Len(t, response.GeneratedMeetings, 3)
	assert.Len(t, response.GeneratedAttendees, 6, "two attendees across three generated meetings")
	assert.Len(t, response.GeneratedPreferred, 3, "one preferred range per generated meeting")

	for _, generated := range response.GeneratedMeetings {
		assert.Equal(t, response.Meeting.ID, generated.OriginalMeetingID)
	}
	for _, attendee := range response.GeneratedAttendees {
		assert.Equal(t, "America/New_York", attendee.Timezone, "cloned attendees take the meeting timezone")
	}

	// Template plus three siblings in the store.
	require.Len(t, fixture.meetings.order, 4)
	// Original attendees plus clones.
	assert.Len(t, fixture.attendees.attendees, 8)

	require.Len(t, fixture.queue.published, 1)
	assert.Equal(t, response.Meeting.ID, fixture.queue.published[0][0])
	require.Len(t, fixture.locker.acquired, 1)
}

func TestCreateMeetingAssistWithoutRecurrence(t *testing.T) {
	fixture := newUsecaseFixture()

	request := recurringCreateRequest()
	request.Frequency = nil
	request.Interval = nil
	request.Until = nil

	response, err := fixture.usecase.CreateMeetingAssist(context.Background(), request)
	require.NoError(t, err)

	assert.Empty(t, response.GeneratedMeetings)
	assert.Empty(t, fixture.queue.published)
	assert.Empty(t, fixture.locker.acquired, "no lock is taken without a recurrence rule")
	assert.Len(t, fixture.meetings.order, 1)
}

func TestCreateMeetingAssistLockContention(t *testing.T) {
	fixture := newUsecaseFixture()
	fixture.locker.denyAll = true

	response, err := fixture.usecase.CreateMeetingAssist(context.Background(), recurringCreateRequest())
	require.NoError(t, err)

	assert.Empty(t, response.GeneratedMeetings, "expansion is skipped while the lock is held elsewhere")
	assert.Len(t, fixture.meetings.order, 1, "only the template is persisted")
}

func TestCreateMeetingAssistRejectsInvalidWindow(t *testing.T) {
	fixture := newUsecaseFixture()

	request := recurringCreateRequest()
	request.WindowEndDate = request.WindowStartDate

	_, err := fixture.usecase.CreateMeetingAssist(context.Background(), request)
	assert.Error(t, err)
}

func TestCreateMeetingAssistRejectsDanglingPreferredIndex(t *testing.T) {
	fixture := newUsecaseFixture()

	request := recurringCreateRequest()
	request.PreferredTimes[0].AttendeeIndex = 5

	_, err := fixture.usecase.CreateMeetingAssist(context.Background(), request)
	assert.Error(t, err)
}

func TestCancelMeetingAssist(t *testing.T) {
	fixture := newUsecaseFixture()

	response, err := fixture.usecase.CreateMeetingAssist(context.Background(), recurringCreateRequest())
	require.NoError(t, err)

	cancelled, err := fixture.usecase.CancelMeetingAssist(context.Background(), response.Meeting.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	stored, err := fixture.usecase.FindMeetingAssistByID(context.Background(), response.Meeting.ID)
	require.NoError(t, err)
	assert.True(t, stored.Cancelled, "cancellation persists, the row is never deleted")

	siblings, err := fixture.usecase.FindGeneratedMeetings(context.Background(), response.Meeting.ID)
	require.NoError(t, err)
	assert.Len(t, siblings, 3, "generated siblings survive cancellation of the template")
}

func TestWorkerTopsUpMissingSiblings(t *testing.T) {
	fixture := newUsecaseFixture()

	response, err := fixture.usecase.CreateMeetingAssist(context.Background(), recurringCreateRequest())
	require.NoError(t, err)

	// Simulate a sibling lost before persistence.
	lost := response.GeneratedMeetings[1]
	delete(fixture.meetings.meetings, lost.ID)
	for i, id := range fixture.meetings.order {
		if id == lost.ID {
			fixture.meetings.order = append(fixture.meetings.order[:i], fixture.meetings.order[i+1:]...)
			break
		}
	}

	cfg := &config.InternalConfig{}
	cfg.MeetingAssist.WorkerCronSpec = "@daily"
	worker := NewWorker(zap.NewNop(), cfg, fixture.locker, fixture.meetings, fixture.usecase, recurrence.NewExpander(zap.NewNop(), 0))

	template, err := fixture.meetings.FindMeetingAssistByID(context.Background(), response.Meeting.ID)
	require.NoError(t, err)
	worker.topUpTemplate(context.Background(), *template)

	siblings, err := fixture.meetings.FindMeetingAssistsByOriginalID(context.Background(), response.Meeting.ID)
	require.NoError(t, err)
	assert.Len(t, siblings, 3, "the worker restores the missing occurrence")
}
