package models

import (
	"fmt"
	"time"
)

// RecurrenceFrequency enumerates supported expansion frequencies on a
// MeetingAssist template, analogous to iCalendar RRULE FREQ values.
type RecurrenceFrequency string

const (
	RecurrenceFrequencyDaily   RecurrenceFrequency = "daily"
	RecurrenceFrequencyWeekly  RecurrenceFrequency = "weekly"
	RecurrenceFrequencyMonthly RecurrenceFrequency = "monthly"
	RecurrenceFrequencyYearly  RecurrenceFrequency = "yearly"
)

// ParseRecurrenceFrequency converts a string into a RecurrenceFrequency, validating the value.
func ParseRecurrenceFrequency(s string) (RecurrenceFrequency, error) {
	switch RecurrenceFrequency(s) {
	case RecurrenceFrequencyDaily, RecurrenceFrequencyWeekly, RecurrenceFrequencyMonthly, RecurrenceFrequencyYearly:
		return RecurrenceFrequency(s), nil
	default:
		return "", fmt.Errorf("invalid frequency; must be one of: daily, weekly, monthly, yearly")
	}
}

// MeetingAssist is a host-defined request to find an available meeting time
// within a window, optionally recurring. Recurrence expansion creates sibling
// copies linked back through OriginalMeetingID; cancellation sets a flag and
// never deletes.
type MeetingAssist struct {
	ID              string    `json:"id" bson:"id"`
	UserID          string    `json:"userId" bson:"userId"`
	WindowStartDate time.Time `json:"windowStartDate" bson:"windowStartDate"`
	WindowEndDate   time.Time `json:"windowEndDate" bson:"windowEndDate"`

	// Recurrence rule. All three must be present for expansion to run.
	Frequency *RecurrenceFrequency `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Interval  *int                 `json:"interval,omitempty" bson:"interval,omitempty"`
	Until     *time.Time           `json:"until,omitempty" bson:"until,omitempty"`

	// Duration is the candidate slot length in minutes.
	Duration int `json:"duration" bson:"duration"`

	Cancelled bool   `json:"cancelled" bson:"cancelled"`
	Priority  int    `json:"priority" bson:"priority"`
	Timezone  string `json:"timezone" bson:"timezone"`

	// OriginalMeetingID is a weak back-reference to the template this meeting
	// was expanded from. Lookup only, never owning.
	OriginalMeetingID string `json:"originalMeetingId,omitempty" bson:"originalMeetingId,omitempty"`

	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasRecurrenceRule reports whether all three recurrence parameters are set.
func (m MeetingAssist) HasRecurrenceRule() bool {
	return m.Frequency != nil && m.Interval != nil && m.Until != nil
}
