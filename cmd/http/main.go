package main

import (
	"context"
	"log"
	"meetingassist-service/internal/app/config"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/delivery/http/controllers"
	"meetingassist-service/internal/app/delivery/http/middlewares"
	"meetingassist-service/internal/app/delivery/http/routers"
	"meetingassist-service/internal/app/drivers/database"
	"meetingassist-service/internal/app/drivers/logger"
	"meetingassist-service/internal/app/drivers/messaging"
	"meetingassist-service/internal/app/services/core/availability"
	"meetingassist-service/internal/app/services/core/meetingassists"
	"meetingassist-service/internal/app/services/core/projection"
	"meetingassist-service/internal/app/services/core/recurrence"
	"meetingassist-service/internal/app/services/datastore/calendarprovider"
	"meetingassist-service/internal/app/services/datastore/mongodb"
	"meetingassist-service/internal/app/services/datastore/remote"
	"meetingassist-service/internal/app/services/shared/locker"
	"meetingassist-service/internal/app/services/shared/recurrencequeue"
	sharedRedis "meetingassist-service/internal/app/services/shared/redis"
	"meetingassist-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)

	var mongoClient *mongo.Client
	if internalConfig.Datastore.Backend == constvars.DatastoreBackendMongo {
		mongoClient = database.NewMongoDB(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Locker
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Queue
	queueService, err := recurrencequeue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.PrefetchCount,
	)
	if err != nil {
		log.Fatalf("Failed to initialize recurrence queue: %v", err)
	}

	// Datastore
	var (
		meetingClient   contracts.MeetingAssistDataClient
		attendeeClient  contracts.AttendeeDataClient
		preferredClient contracts.PreferredTimeDataClient
	)
	switch bootstrap.InternalConfig.Datastore.Backend {
	case constvars.DatastoreBackendMongo:
		meetingClient = mongodb.NewMeetingAssistMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.DbName)
		attendeeClient = mongodb.NewAttendeeMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.DbName)
		preferredClient = mongodb.NewPreferredTimeMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.DbName)
	default:
		remoteClient := remote.NewClient(bootstrap.InternalConfig.Datastore.RemoteBaseUrl)
		meetingClient = remote.NewMeetingAssistRemoteClient(remoteClient)
		attendeeClient = remote.NewAttendeeRemoteClient(remoteClient)
		preferredClient = remote.NewPreferredTimeRemoteClient(remoteClient)
	}

	// Calendar provider
	hostPreferencesClient := calendarprovider.NewHostPreferencesClient(bootstrap.InternalConfig.CalendarProvider.BaseUrl)
	calendarEventClient := calendarprovider.NewCalendarEventClient(bootstrap.InternalConfig.CalendarProvider.BaseUrl)

	// Core engines
	timezones := availability.NewTimezones()
	planner := availability.NewPlanner(timezones, bootstrap.Logger)
	expander := recurrence.NewExpander(bootstrap.Logger, bootstrap.InternalConfig.MeetingAssist.MaxRecurrenceOccurrences)
	projector := projection.NewProjector(bootstrap.Logger)

	// Meeting assist
	meetingAssistUsecase := meetingassists.NewMeetingAssistUsecase(
		meetingClient,
		attendeeClient,
		preferredClient,
		lockerService,
		queueService,
		expander,
		projector,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	meetingAssistController := controllers.NewMeetingAssistController(bootstrap.Logger, meetingAssistUsecase)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		hostPreferencesClient,
		calendarEventClient,
		redisRepository,
		planner,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Recurrence top-up worker
	worker := meetingassists.NewWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		meetingClient,
		meetingAssistUsecase,
		expander,
	)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}
	accessLogger := logger.NewLogrusLogger(bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, accessLogger, appMiddlewares, meetingAssistController, availabilityController)
}
