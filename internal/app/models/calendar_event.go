package models

import "time"

// EventTransparency mirrors the calendar provider's free/busy visibility on an
// event. Anything other than "transparent" blocks candidate slots.
type EventTransparency string

const (
	TransparencyOpaque      EventTransparency = "opaque"
	TransparencyTransparent EventTransparency = "transparent"
)

// CalendarEvent is an existing event fetched from the remote calendar
// provider, already expressed in the user's timezone by the caller.
type CalendarEvent struct {
	ID           string            `json:"id"`
	CalendarID   string            `json:"calendarId"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      time.Time         `json:"endDate"`
	Transparency EventTransparency `json:"transparency,omitempty"`
	AllDay       bool              `json:"allDay,omitempty"`
}

// BlocksAvailability reports whether the event should be treated as a busy
// interval when planning slots.
func (e CalendarEvent) BlocksAvailability() bool {
	return e.Transparency != TransparencyTransparent
}
