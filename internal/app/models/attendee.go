package models

import "time"

// Attendee is a participant attached to one MeetingAssist. Recurrence
// projection clones attendees onto each generated sibling meeting, with the
// timezone overridden to the new meeting's timezone.
type Attendee struct {
	ID          string    `json:"id" bson:"id"`
	HostID      string    `json:"hostId" bson:"hostId"`
	UserID      string    `json:"userId,omitempty" bson:"userId,omitempty"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	Emails      []string  `json:"emails,omitempty" bson:"emails,omitempty"`
	PhoneNums   []string  `json:"phoneNumbers,omitempty" bson:"phoneNumbers,omitempty"`
	MeetingID   string    `json:"meetingId" bson:"meetingId"`
	Timezone    string    `json:"timezone,omitempty" bson:"timezone,omitempty"`
	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
