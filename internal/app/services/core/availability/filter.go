package availability

import (
	"time"

	"meetingassist-service/internal/app/models"
)

const busyKeyLayout = "2006-01-02T15:04"

// dedupeBusy collapses busy intervals that represent the same user-local
// minute range. Calendar backends routinely report the same event through
// several feeds.
func dedupeBusy(busy []models.BusyInterval, userLoc *time.Location) []models.BusyInterval {
	seen := make(map[string]struct{}, len(busy))
	out := make([]models.BusyInterval, 0, len(busy))
	for _, na := range busy {
		key := na.StartDate.In(userLoc).Format(busyKeyLayout) + "|" + na.EndDate.In(userLoc).Format(busyKeyLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, na)
	}
	return out
}

// busyWithinBounds keeps the intervals intersecting the day's resolved
// [start, end) range. A host working day can cross the user's midnight, so
// selecting by a single user-local calendar date would drop intervals on the
// far side of it; intersecting with the bounds keeps every interval a slot
// of this day could collide with.
func busyWithinBounds(busy []models.BusyInterval, start, end time.Time) []models.BusyInterval {
	boundStart := start.Truncate(time.Minute)
	boundEnd := end.Truncate(time.Minute)
	out := make([]models.BusyInterval, 0, len(busy))
	for _, na := range busy {
		if na.EndDate.Truncate(time.Minute).Before(boundStart) || na.StartDate.Truncate(time.Minute).After(boundEnd) {
			continue
		}
		out = append(out, na)
	}
	return out
}

// conflictsWithBusy reports whether a candidate slot collides with any busy
// interval. Comparison happens at minute precision. A slot is rejected when
// either of its endpoints lies strictly inside a busy interval, or when it
// matches a busy interval exactly; slots that merely touch a busy boundary
// survive, back to back meetings are fine.
func conflictsWithBusy(slot models.TimeSlot, busy []models.BusyInterval) bool {
	slotStart := slot.StartDate.Truncate(time.Minute)
	slotEnd := slot.EndDate.Truncate(time.Minute)

	for _, na := range busy {
		busyStart := na.StartDate.Truncate(time.Minute)
		busyEnd := na.EndDate.Truncate(time.Minute)

		innerStart := busyStart.Add(time.Minute)
		innerEnd := busyEnd.Add(-time.Minute)

		if withinInclusive(slotEnd, innerStart, innerEnd) ||
			withinInclusive(slotStart, innerStart, innerEnd) ||
			(busyStart.Equal(slotStart) && busyEnd.Equal(slotEnd)) {
			return true
		}
	}
	return false
}

func withinInclusive(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}
