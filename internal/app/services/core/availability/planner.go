package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"
)

// Planner turns a meeting window plus host working hours and user busy
// intervals into the ordered list of free candidate slots.
type Planner struct {
	Timezones *Timezones
	Logger    *zap.Logger

	newID func() string
}

func NewPlanner(timezones *Timezones, logger *zap.Logger) *Planner {
	return &Planner{
		Timezones: timezones,
		Logger:    logger,
		newID:     uuid.NewString,
	}
}

// PlanWindow enumerates the window day by day in the host timezone, resolves
// each day's generation boundaries, fills them with fixed-duration slots and
// drops every slot that collides with a busy interval. Slots come back in
// chronological order and additionally grouped by host-local calendar date.
func (p *Planner) PlanWindow(in PlanWindowInput) (PlanWindowResult, error) {
	if in.SlotDurationMinutes <= 0 {
		return PlanWindowResult{}, exceptions.ErrInvalidTimeWindow(fmt.Errorf("slot duration must be positive, got %d", in.SlotDurationMinutes))
	}
	if !in.WindowEnd.After(in.WindowStart) {
		return PlanWindowResult{}, exceptions.ErrInvalidTimeWindow(fmt.Errorf("window end %s is not after window start %s", in.WindowEnd, in.WindowStart))
	}

	hostLoc, err := p.Timezones.Resolve(in.HostTimezone)
	if err != nil {
		return PlanWindowResult{}, exceptions.ErrInvalidTimezone(err)
	}
	userLoc, err := p.Timezones.Resolve(in.UserTimezone)
	if err != nil {
		return PlanWindowResult{}, exceptions.ErrInvalidTimezone(err)
	}

	busy := dedupeBusy(in.BusyIntervals, userLoc)

	result := PlanWindowResult{
		Slots:       []models.TimeSlot{},
		SlotsByDate: make(map[string][]models.TimeSlot),
	}

	for _, day := range enumerateDays(in.WindowStart, in.WindowEnd, hostLoc) {
		bounds := resolveDayBoundaries(day, in.WindowEnd, in.HostPreferences, in.SlotDurationMinutes, hostLoc, userLoc)
		if !bounds.ok {
			continue
		}

		dayBusy := busyWithinBounds(busy, bounds.start, bounds.end)

		var kept []models.TimeSlot
		for _, slot := range p.generateSlotsBetween(bounds.start, bounds.end, in.SlotDurationMinutes) {
			if conflictsWithBusy(slot, dayBusy) {
				continue
			}
			kept = append(kept, slot)
		}
		if len(kept) == 0 {
			continue
		}

		dateKey := day.anchor.In(hostLoc).Format(constvars.DateLayoutDay)
		result.Slots = append(result.Slots, kept...)
		result.SlotsByDate[dateKey] = append(result.SlotsByDate[dateKey], kept...)
	}

	p.Logger.Debug("planned availability window",
		zap.String(constvars.LoggingHostTimezoneKey, in.HostTimezone),
		zap.String(constvars.LoggingUserTimezoneKey, in.UserTimezone),
		zap.Int(constvars.LoggingSlotCountKey, len(result.Slots)),
	)
	return result, nil
}

// enumerateDays lists every host-local calendar day the window touches. A
// window spanning less than a full day collapses to a single day that is
// both first and last. The first day's anchor keeps the window start's
// time-of-day so boundary resolution knows where the window literally
// begins; later days anchor at host-local midnight.
func enumerateDays(windowStart, windowEnd time.Time, hostLoc *time.Location) []dayContext {
	start := windowStart.In(hostLoc)
	if windowEnd.Sub(windowStart) < 24*time.Hour {
		return []dayContext{{anchor: start, isFirst: true, isLast: true}}
	}

	end := windowEnd.In(hostLoc)
	firstDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, hostLoc)
	lastDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, hostLoc)

	var days []dayContext
	for cursor := firstDay; !cursor.After(lastDay); cursor = cursor.AddDate(0, 0, 1) {
		day := dayContext{
			anchor:  cursor,
			isFirst: cursor.Equal(firstDay),
			isLast:  cursor.Equal(lastDay),
		}
		if day.isFirst {
			day.anchor = start
		}
		days = append(days, day)
	}
	return days
}

// generateSlotsBetween fills [start, end) with back to back slots of the
// given duration. A trailing remainder shorter than the duration is dropped,
// every slot is exactly durationMinutes long.
func (p *Planner) generateSlotsBetween(start, end time.Time, durationMinutes int) []models.TimeSlot {
	step := time.Duration(durationMinutes) * time.Minute

	var slots []models.TimeSlot
	for cursor := start; !cursor.Add(step).After(end); cursor = cursor.Add(step) {
		slots = append(slots, models.TimeSlot{
			ID:        p.newID(),
			StartDate: cursor,
			EndDate:   cursor.Add(step),
		})
	}
	return slots
}
