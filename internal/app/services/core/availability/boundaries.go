package availability

import (
	"time"

	"meetingassist-service/internal/app/models"

	"meetingassist-service/internal/pkg/constvars"
)

// resolveDayBoundaries turns one enumerated day into the user-timezone range
// slots may be generated over. Working hours are looked up by the day's ISO
// weekday in the host timezone; days without a preference fall back to the
// default working day.
func resolveDayBoundaries(
	day dayContext,
	windowEnd time.Time,
	prefs models.HostPreferences,
	durationMinutes int,
	hostLoc, userLoc *time.Location,
) boundaries {
	hostDay := day.anchor.In(hostLoc)
	isoWeekday := int(hostDay.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7
	}

	workStart := models.WorkTime{Hour: constvars.DefaultWorkDayStartHour}
	if wt, ok := prefs.StartTimeFor(isoWeekday); ok {
		workStart = wt
	}
	workEnd := models.WorkTime{Hour: constvars.DefaultWorkDayEndHour}
	if wt, ok := prefs.EndTimeFor(isoWeekday); ok {
		workEnd = wt
	}

	workStartUser := atHostClock(hostDay, workStart, hostLoc).In(userLoc)
	workEndUser := atHostClock(hostDay, workEnd, hostLoc).In(userLoc)

	start := workStartUser
	end := workEndUser

	if day.isFirst {
		snapped := snapStartToBucket(day.anchor, durationMinutes).In(userLoc)
		if snapped.After(start) {
			start = snapped
		}
	}
	if day.isLast {
		snapped := snapEndToBucket(windowEnd, durationMinutes).In(userLoc)
		if snapped.Before(end) {
			end = snapped
		}
	}

	if !start.Before(end) {
		return boundaries{}
	}
	return boundaries{start: start, end: end, ok: true}
}

// atHostClock pins a host-local wall clock time onto the given day.
func atHostClock(hostDay time.Time, wt models.WorkTime, hostLoc *time.Location) time.Time {
	return time.Date(hostDay.Year(), hostDay.Month(), hostDay.Day(), wt.Hour, wt.Minutes, 0, 0, hostLoc)
}
