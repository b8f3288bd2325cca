package requests

// ListAvailableSlots is assembled from the availability endpoint's query
// parameters. Window dates are RFC3339 timestamps.
type ListAvailableSlots struct {
	HostID          string `validate:"required,uuid"`
	UserID          string `validate:"required,uuid"`
	WindowStartDate string `validate:"required"`
	WindowEndDate   string `validate:"required"`
	SlotDuration    int    `validate:"required,gt=0,lte=480"`
	HostTimezone    string `validate:"required,timezone"`
	UserTimezone    string `validate:"required,timezone"`
}
