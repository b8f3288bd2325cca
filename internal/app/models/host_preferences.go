package models

// WorkTime is a host-local wall-clock boundary attached to an ISO weekday
// (1 = Monday .. 7 = Sunday).
type WorkTime struct {
	Day     int `json:"day" bson:"day"`
	Hour    int `json:"hour" bson:"hour"`
	Minutes int `json:"minutes" bson:"minutes"`
}

// HostPreferences holds a host's per-weekday working-hour boundaries.
// Read-only input to slot planning; weekdays without an entry fall back to
// the 08:00 start / 20:00 end defaults.
type HostPreferences struct {
	ID         string     `json:"id" bson:"id"`
	UserID     string     `json:"userId" bson:"userId"`
	StartTimes []WorkTime `json:"startTimes" bson:"startTimes"`
	EndTimes   []WorkTime `json:"endTimes" bson:"endTimes"`
}

// StartTimeFor returns the work-start entry for the ISO weekday, if present.
func (p HostPreferences) StartTimeFor(isoWeekday int) (WorkTime, bool) {
	for _, wt := range p.StartTimes {
		if wt.Day == isoWeekday {
			return wt, true
		}
	}
	return WorkTime{}, false
}

// EndTimeFor returns the work-end entry for the ISO weekday, if present.
func (p HostPreferences) EndTimeFor(isoWeekday int) (WorkTime, bool) {
	for _, wt := range p.EndTimes {
		if wt.Day == isoWeekday {
			return wt, true
		}
	}
	return WorkTime{}, false
}
