package requests

// CreateMeetingAssist is the payload for creating a meeting assist template.
// Window dates are RFC3339 timestamps. The three recurrence fields are
// optional as a group; when all are present the template is expanded into
// future sibling instances.
type CreateMeetingAssist struct {
	UserID          string `json:"userId" validate:"required,uuid"`
	WindowStartDate string `json:"windowStartDate" validate:"required"`
	WindowEndDate   string `json:"windowEndDate" validate:"required"`
	Duration        int    `json:"duration" validate:"required,gt=0"`
	Timezone        string `json:"timezone" validate:"required,timezone"`
	Priority        int    `json:"priority" validate:"omitempty,gte=1"`

	Frequency *string `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly yearly"`
	Interval  *int    `json:"interval,omitempty" validate:"omitempty,gt=0"`
	Until     *string `json:"until,omitempty"`

	Attendees      []CreateAttendee           `json:"attendees,omitempty" validate:"dive"`
	PreferredTimes []CreatePreferredTimeRange `json:"preferredTimes,omitempty" validate:"dive"`
}

type CreateAttendee struct {
	HostID    string   `json:"hostId" validate:"required,uuid"`
	UserID    string   `json:"userId,omitempty" validate:"omitempty,uuid"`
	Name      string   `json:"name,omitempty"`
	Emails    []string `json:"emails,omitempty" validate:"dive,email"`
	PhoneNums []string `json:"phoneNumbers,omitempty"`
	Timezone  string   `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

type CreatePreferredTimeRange struct {
	AttendeeIndex int    `json:"attendeeIndex" validate:"gte=0"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
	DayOfWeek     *int   `json:"dayOfWeek,omitempty" validate:"omitempty,gte=1,lte=7"`
}
