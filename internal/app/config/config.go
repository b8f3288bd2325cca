package config

import (
	"meetingassist-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "meetingassist"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		MeetingAssist: MeetingAssist{
			MaxRecurrenceOccurrences:      utils.GetEnvInt("MEETING_ASSIST_MAX_RECURRENCE_OCCURRENCES", 366),
			WorkerCronSpec:                utils.GetEnvString("MEETING_ASSIST_WORKER_CRON_SPEC", "@daily"),
			AvailabilityCacheTTLInSeconds: utils.GetEnvInt("MEETING_ASSIST_AVAILABILITY_CACHE_TTL_IN_SECONDS", 60),
			ExpansionLockTTLInSeconds:     utils.GetEnvInt("MEETING_ASSIST_EXPANSION_LOCK_TTL_IN_SECONDS", 120),
		},
		Datastore: Datastore{
			Backend:       utils.GetEnvString("DATASTORE_BACKEND", "remote"),
			RemoteBaseUrl: utils.GetEnvString("DATASTORE_REMOTE_BASE_URL", "http://localhost:5555/datastore"),
		},
		CalendarProvider: CalendarProvider{
			BaseUrl: utils.GetEnvString("CALENDAR_PROVIDER_BASE_URL", "http://localhost:5556/calendar"),
		},
		RabbitMQ: AppRabbitMQ{
			PrefetchCount: utils.GetEnvInt("RABBITMQ_PREFETCH_COUNT", 1),
		},
		MongoDB: AppMongoDB{
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "meetingassist"),
		},
	}
}
