package config

type InternalConfig struct {
	App              App              `mapstructure:"app"`
	MeetingAssist    MeetingAssist    `mapstructure:"meeting_assist"`
	Datastore        Datastore        `mapstructure:"datastore"`
	CalendarProvider CalendarProvider `mapstructure:"calendar_provider"`
	RabbitMQ         AppRabbitMQ      `mapstructure:"rabbitmq"`
	MongoDB          AppMongoDB       `mapstructure:"mongodb"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

type MeetingAssist struct {
	// MaxRecurrenceOccurrences bounds a single template's expansion against a
	// distant until date.
	MaxRecurrenceOccurrences int `mapstructure:"max_recurrence_occurrences"`
	// WorkerCronSpec defines the cron expression for the expansion top-up
	// worker (e.g., "@daily").
	WorkerCronSpec                string `mapstructure:"worker_cron_spec"`
	AvailabilityCacheTTLInSeconds int    `mapstructure:"availability_cache_ttl_in_seconds"`
	ExpansionLockTTLInSeconds     int    `mapstructure:"expansion_lock_ttl_in_seconds"`
}

type Datastore struct {
	// Backend selects "remote" or "mongo".
	Backend       string `mapstructure:"backend"`
	RemoteBaseUrl string `mapstructure:"remote_base_url"`
}

type CalendarProvider struct {
	BaseUrl string `mapstructure:"base_url"`
}

type AppRabbitMQ struct {
	PrefetchCount int `mapstructure:"prefetch_count"`
}

type AppMongoDB struct {
	DbName string `mapstructure:"db_name"`
}
