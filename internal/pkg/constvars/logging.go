package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingMeetingIDKey      = "meeting_id"
	LoggingHostIDKey         = "host_id"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockTTLKey        = "lock_ttl"
	LoggingHostTimezoneKey   = "host_timezone"
	LoggingUserTimezoneKey   = "user_timezone"
	LoggingSlotCountKey      = "slot_count"
	LoggingQueueNameKey      = "queue_name"
	LoggingGeneratedCountKey = "generated_count"
	LoggingWarningKey        = "warning"
)
