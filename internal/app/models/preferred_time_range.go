package models

import "time"

// PreferredTimeRange is an attendee-supplied preferred meeting time, with an
// optional ISO weekday restriction. DayOfWeek values <= 0 are treated as
// unset and dropped during recurrence projection.
type PreferredTimeRange struct {
	ID          string    `json:"id" bson:"id"`
	MeetingID   string    `json:"meetingId" bson:"meetingId"`
	AttendeeID  string    `json:"attendeeId" bson:"attendeeId"`
	HostID      string    `json:"hostId" bson:"hostId"`
	StartTime   string    `json:"startTime" bson:"startTime"`
	EndTime     string    `json:"endTime" bson:"endTime"`
	DayOfWeek   *int      `json:"dayOfWeek,omitempty" bson:"dayOfWeek,omitempty"`
	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasDayOfWeek reports whether the optional weekday restriction is set to a
// positive value.
func (p PreferredTimeRange) HasDayOfWeek() bool {
	return p.DayOfWeek != nil && *p.DayOfWeek > 0
}
