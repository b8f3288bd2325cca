package meetingassists

import (
	"context"
	"fmt"
	"time"

	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/app/services/core/projection"
	"meetingassist-service/internal/app/services/core/recurrence"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/dto/requests"
	"meetingassist-service/internal/pkg/dto/responses"
	"meetingassist-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const expansionLockKeyFormat = "meetingassist:expand:%s:%s"

type MeetingAssistUsecase struct {
	meetings  contracts.MeetingAssistDataClient
	attendees contracts.AttendeeDataClient
	preferred contracts.PreferredTimeDataClient
	locker    contracts.LockerService
	queue     contracts.RecurrenceQueueService
	expander  *recurrence.Expander
	projector *projection.Projector
	config    *config.InternalConfig
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewMeetingAssistUsecase(
	meetings contracts.MeetingAssistDataClient,
	attendees contracts.AttendeeDataClient,
	preferred contracts.PreferredTimeDataClient,
	locker contracts.LockerService,
	queue contracts.RecurrenceQueueService,
	expander *recurrence.Expander,
	projector *projection.Projector,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *MeetingAssistUsecase {
	return &MeetingAssistUsecase{
		meetings:  meetings,
		attendees: attendees,
		preferred: preferred,
		locker:    locker,
		queue:     queue,
		expander:  expander,
		projector: projector,
		config:    internalConfig,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// CreateMeetingAssist persists the template and its attendees, then runs
// recurrence expansion under a per-host-per-day lock, persists everything
// the expansion produced, and notifies downstream consumers over the queue.
func (u *MeetingAssistUsecase) CreateMeetingAssist(ctx context.Context, request *requests.CreateMeetingAssist) (*responses.CreateMeetingAssistResponse, error) {
	meeting, err := u.buildMeetingAssist(request)
	if err != nil {
		return nil, err
	}

	persisted, err := u.meetings.CreateMeetingAssist(ctx, meeting)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to persist meeting assist template")
		return nil, err
	}

	attendees, preferred, err := u.persistAttendees(ctx, persisted, request)
	if err != nil {
		return nil, err
	}

	response := &responses.CreateMeetingAssistResponse{Meeting: *persisted}
	if !persisted.HasRecurrenceRule() {
		return response, nil
	}

	expansion, err := u.expandUnderLock(ctx, persisted, attendees, preferred)
	if err != nil {
		return nil, err
	}
	if expansion == nil {
		// Another writer holds the expansion lock for this host and day.
		// The worker tops the expansion up on its next pass.
		return response, nil
	}

	response.GeneratedMeetings = expansion.meetings
	response.GeneratedAttendees = expansion.attendees
	response.GeneratedPreferred = expansion.preferred
	response.ExpansionWarning = expansion.warning
	return response, nil
}

func (u *MeetingAssistUsecase) FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	return u.meetings.FindMeetingAssistByID(ctx, meetingID)
}

func (u *MeetingAssistUsecase) FindMeetingAssistsByHost(ctx context.Context, hostUserID string) ([]models.MeetingAssist, error) {
	return u.meetings.FindMeetingAssistsByUserID(ctx, hostUserID)
}

func (u *MeetingAssistUsecase) FindGeneratedMeetings(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error) {
	return u.meetings.FindMeetingAssistsByOriginalID(ctx, originalMeetingID)
}

// CancelMeetingAssist flips the cancelled flag. Rows are never deleted, so
// generated siblings keep their back-reference.
func (u *MeetingAssistUsecase) CancelMeetingAssist(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	meeting, err := u.meetings.FindMeetingAssistByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	meeting.Cancelled = true
	meeting.UpdatedAt = u.now()

	updated, err := u.meetings.UpdateMeetingAssist(ctx, meeting)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to cancel meeting assist",
			zap.String(constvars.LoggingMeetingIDKey, meetingID),
		)
		return nil, err
	}
	return updated, nil
}

func (u *MeetingAssistUsecase) buildMeetingAssist(request *requests.CreateMeetingAssist) (*models.MeetingAssist, error) {
	windowStart, err := time.Parse(time.RFC3339, request.WindowStartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	windowEnd, err := time.Parse(time.RFC3339, request.WindowEndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if !windowEnd.After(windowStart) {
		return nil, exceptions.ErrInvalidTimeWindow(fmt.Errorf("window end %s is not after window start %s", request.WindowEndDate, request.WindowStartDate))
	}

	now := u.now()
	meeting := &models.MeetingAssist{
		ID:              u.newID(),
		UserID:          request.UserID,
		WindowStartDate: windowStart,
		WindowEndDate:   windowEnd,
		Duration:        request.Duration,
		Priority:        request.Priority,
		Timezone:        request.Timezone,
		CreatedDate:     now,
		UpdatedAt:       now,
	}
	if meeting.Priority == 0 {
		meeting.Priority = 1
	}

	if request.Frequency != nil {
		frequency, err := models.ParseRecurrenceFrequency(*request.Frequency)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		meeting.Frequency = &frequency
	}
	meeting.Interval = request.Interval
	if request.Until != nil {
		until, err := time.Parse(time.RFC3339, *request.Until)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		meeting.Until = &until
	}

	return meeting, nil
}

func (u *MeetingAssistUsecase) persistAttendees(
	ctx context.Context,
	meeting *models.MeetingAssist,
	request *requests.CreateMeetingAssist,
) ([]models.Attendee, []models.PreferredTimeRange, error) {
	if len(request.Attendees) == 0 {
		return nil, nil, nil
	}

	now := u.now()
	attendees := make([]models.Attendee, 0, len(request.Attendees))
	for _, attendeeRequest := range request.Attendees {
		timezone := attendeeRequest.Timezone
		if timezone == "" {
			timezone = meeting.Timezone
		}
		attendees = append(attendees, models.Attendee{
			ID:          u.newID(),
			HostID:      attendeeRequest.HostID,
			UserID:      attendeeRequest.UserID,
			Name:        attendeeRequest.Name,
			Emails:      attendeeRequest.Emails,
			PhoneNums:   attendeeRequest.PhoneNums,
			MeetingID:   meeting.ID,
			Timezone:    timezone,
			CreatedDate: now,
			UpdatedAt:   now,
		})
	}

	var preferred []models.PreferredTimeRange
	for _, rangeRequest := range request.PreferredTimes {
		if rangeRequest.AttendeeIndex >= len(attendees) {
			return nil, nil, exceptions.ErrInputValidation(fmt.Errorf("preferred time references attendee index %d, only %d attendees given", rangeRequest.AttendeeIndex, len(attendees)))
		}
		attendee := attendees[rangeRequest.AttendeeIndex]
		preferred = append(preferred, models.PreferredTimeRange{
			ID:          u.newID(),
			MeetingID:   meeting.ID,
			AttendeeID:  attendee.ID,
			HostID:      attendee.HostID,
			StartTime:   rangeRequest.StartTime,
			EndTime:     rangeRequest.EndTime,
			DayOfWeek:   rangeRequest.DayOfWeek,
			CreatedDate: now,
			UpdatedAt:   now,
		})
	}

	persistedAttendees, err := u.attendees.CreateAttendees(ctx, attendees)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to persist attendees",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
		)
		return nil, nil, err
	}
	persistedPreferred, err := u.preferred.CreatePreferredTimes(ctx, preferred)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to persist preferred time ranges",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
		)
		return nil, nil, err
	}
	return persistedAttendees, persistedPreferred, nil
}

type expansionArtifacts struct {
	meetings  []models.MeetingAssist
	attendees []models.Attendee
	preferred []models.PreferredTimeRange
	warning   string
}

// expandUnderLock serializes recurrence persistence per host and window day.
// A nil result with nil error means the lock was held elsewhere and the
// expansion was skipped.
func (u *MeetingAssistUsecase) expandUnderLock(
	ctx context.Context,
	meeting *models.MeetingAssist,
	attendees []models.Attendee,
	preferred []models.PreferredTimeRange,
) (*expansionArtifacts, error) {
	lockKey := fmt.Sprintf(expansionLockKeyFormat, meeting.UserID, meeting.WindowStartDate.UTC().Format(constvars.DateLayoutDay))
	lockTTL := time.Duration(u.config.MeetingAssist.ExpansionLockTTLInSeconds) * time.Second

	acquired, lockValue, err := u.locker.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		u.logger.Warn("expansion lock held elsewhere, skipping expansion",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, nil
	}
	defer u.locker.Unlock(ctx, lockKey, lockValue)

	expansion, err := u.expander.Expand(*meeting)
	if err != nil {
		return nil, err
	}
	if !expansion.Expanded || len(expansion.Meetings) == 0 {
		return &expansionArtifacts{warning: expansion.Warning}, nil
	}

	generatedMeetings, err := u.meetings.CreateMeetingAssists(ctx, expansion.Meetings)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to persist generated meetings",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
		)
		return nil, err
	}

	clonedAttendees, clonedPreferred := u.projector.ProjectAll(generatedMeetings, attendees, preferred)
	persistedAttendees, err := u.attendees.CreateAttendees(ctx, clonedAttendees)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to persist projected attendees",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
		)
		return nil, err
	}
	persistedPreferred, err := u.preferred.CreatePreferredTimes(ctx, clonedPreferred)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to persist projected preferred times",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
		)
		return nil, err
	}

	generatedIDs := make([]string, 0, len(generatedMeetings))
	for _, generated := range generatedMeetings {
		generatedIDs = append(generatedIDs, generated.ID)
	}
	if err := u.queue.PublishMeetingExpanded(ctx, meeting.ID, generatedIDs); err != nil {
		// Downstream notification is best effort; the rows are already
		// persisted and the worker reconciles on its next pass.
		u.logger.With(zap.Error(err)).Error("failed to publish expansion message",
			zap.String(constvars.LoggingMeetingIDKey, meeting.ID),
		)
	}

	return &expansionArtifacts{
		meetings:  generatedMeetings,
		attendees: persistedAttendees,
		preferred: persistedPreferred,
		warning:   expansion.Warning,
	}, nil
}
