package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"timezone": "must be a valid IANA timezone name",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientMeetingNotFound               = "meeting assist not found"
	ErrClientInvalidTimeWindow             = "the requested time window is invalid"
	ErrClientServerLongRespond             = "server takes too long to respond"
)

// Error messages for developers
const (
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON payload"
	ErrDevCannotParseTime            = "cannot parse timestamp"
	ErrDevCannotMarshalJSON          = "cannot marshal value to JSON"
	ErrDevURLParamIDValidationFailed = "url parameter %s failed validation"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"

	ErrDevInvalidTimezone       = "cannot resolve IANA timezone"
	ErrDevInvalidTimeWindow     = "window end must be after window start"
	ErrDevMeetingNotFound       = "meeting assist does not exist"
	ErrDevInvalidRecurrenceRule = "recurrence rule is malformed"

	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisGetNoData      = "no data found in redis for key %s"
	ErrDevRedisSetNX          = "failed to set data with NX to redis"
	ErrDevRedisUnlock         = "failed to release redis lock"
	ErrDevRedisRefreshLock    = "failed to refresh redis lock TTL"
	ErrDevRabbitMQPublish     = "failed to publish message to queue %s"
	ErrDevMongoFindDocument   = "failed to find document in mongo"
	ErrDevMongoInsertDocument = "failed to insert document to mongo"
	ErrDevMongoUpdateDocument = "failed to update document in mongo"

	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevDatastoreQuery              = "datastore query failed for %s"
	ErrDevDatastoreMutation           = "datastore mutation failed for %s"
	ErrDevDatastoreDecodeResponse     = "failed to decode datastore response for %s"
	ErrDevCalendarListEvents          = "failed to list calendar events"
	ErrDevHostPreferencesFetch        = "failed to fetch host preferences"
	ErrDevHostPreferencesNotConfigured = "host has no stored preferences"
)
