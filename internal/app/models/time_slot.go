package models

import "time"

// TimeSlot is a candidate meeting interval of fixed duration, expressed in the
// user's timezone. Ephemeral and computed; never persisted by this service.
type TimeSlot struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// BusyInterval is an existing commitment in the user's timezone that no
// candidate slot may overlap. Input only.
type BusyInterval struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
