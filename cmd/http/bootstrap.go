package main

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"
	"clinic-staff-service/internal/app/delivery/http/routers"
	"clinic-staff-service/internal/app/drivers/database"
	"clinic-staff-service/internal/app/drivers/logger"
	"clinic-staff-service/internal/app/drivers/messaging"
	"clinic-staff-service/internal/app/services/core/appointments"
	"clinic-staff-service/internal/app/services/core/attendances"
	"clinic-staff-service/internal/app/services/core/auth"
	"clinic-staff-service/internal/app/services/core/schedules"
	"clinic-staff-service/internal/app/services/core/session"
	"clinic-staff-service/internal/app/services/core/settings"
	"clinic-staff-service/internal/app/services/core/users"
	"clinic-staff-service/internal/app/services/shared/locker"
	"clinic-staff-service/internal/app/services/shared/publisher"
	"clinic-staff-service/internal/app/services/shared/redis"
	"clinic-staff-service/internal/pkg/timezone"
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type repositories struct {
	users            contracts.UserRepository
	appointments     contracts.AppointmentRepository
	defaultTimeSlots contracts.DefaultTimeSlotsRepository
	daytimeSlots     contracts.DaytimeSlotsRepository
	attendance       contracts.AttendanceRepository
	settings         contracts.SettingsRepository
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func loadBootstrap(withBroker bool) (*config.Bootstrap, error) {
	internalConfig, driverConfig, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, err
	}
	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig, log),
		Redis:          database.NewRedisClient(driverConfig, log),
		Logger:         log,
		AccessLogger:   logger.NewLogrusLogger(internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if withBroker {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}
	return bootstrap, nil
}

func newRepositories(bootstrap *config.Bootstrap) *repositories {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	return &repositories{
		users:            users.NewUserMongoRepository(bootstrap.MongoDB, dbName),
		appointments:     appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName),
		defaultTimeSlots: schedules.NewDefaultTimeSlotsMongoRepository(bootstrap.MongoDB, dbName),
		daytimeSlots:     schedules.NewDaytimeSlotsMongoRepository(bootstrap.MongoDB, dbName),
		attendance:       attendances.NewAttendanceMongoRepository(bootstrap.MongoDB, dbName),
		settings:         settings.NewSettingsMongoRepository(bootstrap.MongoDB, dbName),
	}
}

// prepareStore creates every index and inserts the admin account when no
// admin exists yet.
func prepareStore(ctx context.Context, bootstrap *config.Bootstrap, repos *repositories, userUsecase contracts.UserUsecase) error {
	for _, repository := range []indexer{
		repos.users,
		repos.appointments,
		repos.defaultTimeSlots,
		repos.daytimeSlots,
		repos.attendance,
	} {
		if err := repository.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	created, err := userUsecase.SeedAdmin(ctx, bootstrap.InternalConfig.Account.AdminPassword)
	if err != nil {
		return err
	}
	bootstrap.Logger.Info("Store prepared", zap.Bool("admin_created", created))
	return nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	normalizer, err := timezone.New(internalConfig.App.Timezone)
	if err != nil {
		return err
	}

	repos := newRepositories(bootstrap)

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	slotLocker := locker.NewSlotLocker(redisRepository, normalizer, log)
	sessionService := session.NewSessionService(redisRepository, time.Duration(internalConfig.JWT.ExpTimeInHour)*time.Hour, log)
	eventPublisher, err := publisher.NewAppointmentEventPublisher(bootstrap.RabbitMQ, internalConfig.Messaging.AppointmentQueue, log)
	if err != nil {
		return err
	}

	// Usecases
	userUsecase := users.NewUserUsecase(repos.users, internalConfig, log)
	authUsecase := auth.NewAuthUsecase(repos.users, sessionService, internalConfig, log)
	scheduleUsecase := schedules.NewScheduleUsecase(repos.defaultTimeSlots, repos.daytimeSlots, repos.users, repos.appointments, normalizer, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(repos.appointments, repos.users, slotLocker, eventPublisher, normalizer, internalConfig, log)
	attendanceUsecase := attendances.NewAttendanceUsecase(repos.attendance, normalizer, log)
	settingsUsecase := settings.NewSettingsUsecase(repos.settings, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := prepareStore(ctx, bootstrap, repos, userUsecase); err != nil {
		return err
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		bootstrap.AccessLogger,
		middlewares.NewMiddlewares(log, sessionService, internalConfig),
		controllers.NewAuthController(log, authUsecase, internalConfig),
		controllers.NewUserController(log, userUsecase, internalConfig),
		controllers.NewScheduleController(log, scheduleUsecase, internalConfig),
		controllers.NewAppointmentController(log, appointmentUsecase, internalConfig),
		controllers.NewAttendanceController(log, attendanceUsecase, internalConfig),
		controllers.NewSettingsController(log, settingsUsecase, internalConfig),
	)
	return nil
}
