package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"ot-tracking-service/cmd/migration"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/delivery/http/controllers"
	"ot-tracking-service/internal/app/delivery/http/middlewares"
	"ot-tracking-service/internal/app/delivery/http/routers"
	"ot-tracking-service/internal/app/drivers/database"
	"ot-tracking-service/internal/app/drivers/logger"
	"ot-tracking-service/internal/app/drivers/messaging"
	"ot-tracking-service/internal/app/drivers/storage"
	"ot-tracking-service/internal/app/services/core/assessments"
	"ot-tracking-service/internal/app/services/core/catalogs"
	"ot-tracking-service/internal/app/services/core/goals"
	"ot-tracking-service/internal/app/services/core/overview"
	"ot-tracking-service/internal/app/services/core/patients"
	"ot-tracking-service/internal/app/services/core/progress"
	romAssessments "ot-tracking-service/internal/app/services/core/rom_assessments"
	sessionNotes "ot-tracking-service/internal/app/services/core/session_notes"
	sharedMessaging "ot-tracking-service/internal/app/services/shared/messaging"
	"ot-tracking-service/internal/app/services/shared/locker"
	"ot-tracking-service/internal/app/services/shared/redis"
	sharedStorage "ot-tracking-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig.App.Env)
	logrus.Infof("Starting ot-tracking-service version %s (%s)", Version, Tag)

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		logrus.Fatalf("Error while initializing zap logger: %v", err)
	}

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, driverConfig)
	if err != nil {
		logrus.Fatal(err)
	}
	_, err = migration.Run(ctx, mongoDB, internalConfig.MongoDB.DBName)
	if err != nil {
		logrus.Fatal(err)
	}

	redisClient, err := database.NewRedisClient(ctx, driverConfig)
	if err != nil {
		logrus.Fatal(err)
	}

	minioClient, err := storage.NewMinio(driverConfig)
	if err != nil {
		logrus.Fatal(err)
	}
	err = storage.EnsureBucket(ctx, minioClient, internalConfig.Minio.BucketName)
	if err != nil {
		logrus.Fatal(err)
	}

	// Events are best effort; the service runs without a broker.
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		logrus.Warnf("Assessment events disabled: %v", err)
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	catalogWorker, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Error while bootstraping the app: %v", err)
	}
	catalogWorker.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      internalConfig.App.RequestTimeout() + 5*time.Second,
	}

	go func() {
		logrus.Infof("Server listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	catalogWorker.Stop()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Error while closing connections: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) (*catalogs.Worker, error) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	dbName := internalConfig.MongoDB.DBName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := sharedMessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.AssessmentEventQueue)
		if err != nil {
			log.Warn("bootstrapingTheApp assessment events disabled", zap.Error(err))
		} else {
			eventPublisher = publisher
		}
	}

	// Repositories
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	assessmentRepository := assessments.NewAssessmentMongoRepository(bootstrap.MongoDB, dbName)
	romAssessmentRepository := romAssessments.NewROMAssessmentMongoRepository(bootstrap.MongoDB, dbName)
	goalRepository := goals.NewGoalMongoRepository(bootstrap.MongoDB, dbName)
	sessionNoteRepository := sessionNotes.NewSessionNoteMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	patientUsecase := patients.NewPatientUsecase(
		patientRepository,
		assessmentRepository,
		romAssessmentRepository,
		goalRepository,
		sessionNoteRepository,
		redisRepository,
		log,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentRepository, patientRepository, redisRepository, eventPublisher, log)
	romAssessmentUsecase := romAssessments.NewROMAssessmentUsecase(romAssessmentRepository, patientRepository, eventPublisher, log)
	goalUsecase := goals.NewGoalUsecase(goalRepository, patientRepository, redisRepository, log)
	sessionNoteUsecase := sessionNotes.NewSessionNoteUsecase(sessionNoteRepository, patientRepository, redisRepository, log)
	progressUsecase := progress.NewProgressUsecase(
		patientRepository,
		assessmentRepository,
		romAssessmentRepository,
		minioStorage,
		internalConfig,
		log,
	)
	overviewUsecase := overview.NewOverviewUsecase(
		patientRepository,
		assessmentRepository,
		goalRepository,
		sessionNoteRepository,
		redisRepository,
		internalConfig,
		log,
	)
	catalogUsecase, err := catalogs.NewCatalogUsecase(redisRepository, internalConfig, log)
	if err != nil {
		return nil, err
	}
	catalogWorker := catalogs.NewWorker(log, internalConfig, locker.NewLockService(redisRepository, log), catalogUsecase)

	// Controllers
	handlers := &routers.Controllers{
		Patient:       controllers.NewPatientController(log, patientUsecase, internalConfig),
		Assessment:    controllers.NewAssessmentController(log, assessmentUsecase, internalConfig),
		ROMAssessment: controllers.NewROMAssessmentController(log, romAssessmentUsecase, internalConfig),
		Goal:          controllers.NewGoalController(log, goalUsecase, internalConfig),
		SessionNote:   controllers.NewSessionNoteController(log, sessionNoteUsecase, internalConfig),
		Progress:      controllers.NewProgressController(log, progressUsecase, overviewUsecase, internalConfig),
		Catalog:       controllers.NewCatalogController(log, catalogUsecase, internalConfig),
	}

	routers.SetupRoutes(bootstrap.Router, log, internalConfig, middlewares.NewMiddlewares(log, internalConfig), handlers)
	return catalogWorker, nil
}
