package availability

import (
	"context"
	"fmt"
	"time"

	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/dto/requests"
	"meetingassist-service/internal/pkg/dto/responses"
	"meetingassist-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const availabilityCacheKeyFormat = "availability:%s:%s:%s:%s:%d:%s:%s"

type AvailabilityUsecase struct {
	preferences contracts.HostPreferencesClient
	calendar    contracts.CalendarEventClient
	redis       contracts.RedisRepository
	planner     *Planner
	config      *config.InternalConfig
	logger      *zap.Logger
}

func NewAvailabilityUsecase(
	preferences contracts.HostPreferencesClient,
	calendar contracts.CalendarEventClient,
	redisRepo contracts.RedisRepository,
	planner *Planner,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *AvailabilityUsecase {
	return &AvailabilityUsecase{
		preferences: preferences,
		calendar:    calendar,
		redis:       redisRepo,
		planner:     planner,
		config:      internalConfig,
		logger:      logger,
	}
}

// ListAvailableSlots computes the free candidate slots for one window. The
// planner is deterministic, so results are cached in redis under a short TTL
// keyed by every input that affects the outcome.
func (u *AvailabilityUsecase) ListAvailableSlots(ctx context.Context, request *requests.ListAvailableSlots) (*responses.AvailableSlotsResponse, error) {
	windowStart, err := time.Parse(time.RFC3339, request.WindowStartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	windowEnd, err := time.Parse(time.RFC3339, request.WindowEndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	cacheKey := fmt.Sprintf(availabilityCacheKeyFormat,
		request.HostID,
		request.UserID,
		windowStart.UTC().Format(time.RFC3339),
		windowEnd.UTC().Format(time.RFC3339),
		request.SlotDuration,
		request.HostTimezone,
		request.UserTimezone,
	)

	if cached := u.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	preferences, err := u.preferences.FindHostPreferencesByUserID(ctx, request.HostID)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to fetch host preferences",
			zap.String(constvars.LoggingHostIDKey, request.HostID),
		)
		return nil, err
	}

	events, err := u.calendar.FindEventsWithinWindow(ctx, request.UserID, windowStart, windowEnd)
	if err != nil {
		u.logger.With(zap.Error(err)).Error("failed to list calendar events")
		return nil, err
	}

	result, err := u.planner.PlanWindow(PlanWindowInput{
		WindowStart:         windowStart,
		WindowEnd:           windowEnd,
		SlotDurationMinutes: request.SlotDuration,
		HostPreferences:     *preferences,
		HostTimezone:        request.HostTimezone,
		UserTimezone:        request.UserTimezone,
		BusyIntervals:       busyIntervalsFromEvents(events),
	})
	if err != nil {
		return nil, err
	}

	response := &responses.AvailableSlotsResponse{
		Slots:       result.Slots,
		SlotsByDate: result.SlotsByDate,
	}
	u.writeCache(ctx, cacheKey, response)
	return response, nil
}

func (u *AvailabilityUsecase) readCache(ctx context.Context, key string) *responses.AvailableSlotsResponse {
	cached, err := u.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return nil
	}
	var response responses.AvailableSlotsResponse
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		u.logger.Warn("discarding unreadable availability cache entry",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil
	}
	return &response
}

func (u *AvailabilityUsecase) writeCache(ctx context.Context, key string, response *responses.AvailableSlotsResponse) {
	ttl := time.Duration(u.config.MeetingAssist.AvailabilityCacheTTLInSeconds) * time.Second
	if err := u.redis.Set(ctx, key, response, ttl); err != nil {
		u.logger.Warn("failed to cache availability result",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

// busyIntervalsFromEvents reduces calendar events to the busy intervals the
// planner filters against. Transparent events never block a slot.
func busyIntervalsFromEvents(events []models.CalendarEvent) []models.BusyInterval {
	busy := make([]models.BusyInterval, 0, len(events))
	for _, event := range events {
		if !event.BlocksAvailability() {
			continue
		}
		busy = append(busy, models.BusyInterval{
			StartDate: event.StartDate,
			EndDate:   event.EndDate,
		})
	}
	return busy
}
