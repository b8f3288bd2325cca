package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourceMeetingAssist      = "MeetingAssist"
	ResourceAttendee           = "Attendee"
	ResourcePreferredTimeRange = "PreferredTimeRange"
	ResourceHostPreferences    = "HostPreferences"
	ResourceCalendarEvent      = "CalendarEvent"
)

// Recurrence frequency values accepted on a MeetingAssist template.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// Datastore backend selectors for DATASTORE_BACKEND.
const (
	DatastoreBackendRemote = "remote"
	DatastoreBackendMongo  = "mongo"
)

const (
	// DefaultWorkDayStartHour and DefaultWorkDayEndHour apply when a host has
	// no working-hour entry for a weekday.
	DefaultWorkDayStartHour = 8
	DefaultWorkDayEndHour   = 20
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	MongoCollectionMeetingAssists = "meeting_assists"
	MongoCollectionAttendees      = "attendees"
	MongoCollectionPreferredTimes = "preferred_time_ranges"
)

// Time layouts used across the service.
const (
	DateLayoutDay = "2006-01-02"
	ClockLayout   = "15:04:05"
)

