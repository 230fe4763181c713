package config

import (
	"clinic-staff-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type environment struct {
	AppEnv                        string `mapstructure:"APP_ENV"`
	AppPort                       string `mapstructure:"APP_PORT"`
	AppVersion                    string `mapstructure:"APP_VERSION"`
	AppAddress                    string `mapstructure:"APP_ADDRESS"`
	AppTimezone                   string `mapstructure:"APP_TIMEZONE"`
	AppEndpointPrefix             string `mapstructure:"APP_ENDPOINT_PREFIX"`
	AppCORSAllowedOrigins         string `mapstructure:"APP_CORS_ALLOWED_ORIGINS"`
	AppMaxRequests                int    `mapstructure:"APP_MAX_REQUEST"`
	AppShutdownTimeout            int    `mapstructure:"APP_SHUTDOWN_TIMEOUT"`
	AppRequestTimeoutInSecond     int    `mapstructure:"APP_REQUEST_TIMEOUT_IN_SECOND"`
	AppRequestBodyLimitInMegabyte int    `mapstructure:"APP_REQUEST_BODY_LIMIT_IN_MEGABYTE"`
	AppLoginMaxRequests           int    `mapstructure:"APP_LOGIN_MAX_REQUESTS"`
	AppLoginBlockTimeInMinute     int    `mapstructure:"APP_LOGIN_BLOCK_TIME_IN_MINUTE"`
	AppRabbitMQAppointmentQueue   string `mapstructure:"APP_RABBITMQ_APPOINTMENT_QUEUE"`
	AppTemporaryPassword          string `mapstructure:"APP_TEMPORARY_PASSWORD"`
	AppAdminPassword              string `mapstructure:"APP_ADMIN_PASSWORD"`
	AppSlotLockExpTimeInSecond    int    `mapstructure:"APP_SLOT_LOCK_EXP_TIME_IN_SECOND"`

	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTExpTimeInHour int    `mapstructure:"JWT_EXP_TIME_IN_HOUR"`

	MongoDBURI      string `mapstructure:"MONGODB_URI"`
	MongoDBHost     string `mapstructure:"MONGODB_HOST"`
	MongoDBPort     string `mapstructure:"MONGODB_PORT"`
	MongoDBUsername string `mapstructure:"MONGODB_USERNAME"`
	MongoDBPassword string `mapstructure:"MONGODB_PASSWORD"`
	MongoDBDbName   string `mapstructure:"MONGODB_DB_NAME"`

	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RabbitMQHost     string `mapstructure:"RABBITMQ_HOST"`
	RabbitMQPort     string `mapstructure:"RABBITMQ_PORT"`
	RabbitMQUsername string `mapstructure:"RABBITMQ_USERNAME"`
	RabbitMQPassword string `mapstructure:"RABBITMQ_PASSWORD"`

	LoggerLevel               string `mapstructure:"LOGGER_LEVEL"`
	LoggerOutputFileName      string `mapstructure:"LOGGER_OUTPUT_FILENAME"`
	LoggerOutputErrorFileName string `mapstructure:"LOGGER_OUTPUT_ERROR_FILENAME"`
}

var defaults = map[string]interface{}{
	"APP_ENV":                            "development",
	"APP_PORT":                           ":8080",
	"APP_VERSION":                        "v1",
	"APP_ADDRESS":                        "localhost",
	"APP_TIMEZONE":                       "Asia/Manila",
	"APP_ENDPOINT_PREFIX":                "api",
	"APP_CORS_ALLOWED_ORIGINS":           "*",
	"APP_MAX_REQUEST":                    20,
	"APP_SHUTDOWN_TIMEOUT":               10,
	"APP_REQUEST_TIMEOUT_IN_SECOND":      10,
	"APP_REQUEST_BODY_LIMIT_IN_MEGABYTE": 2,
	"APP_LOGIN_MAX_REQUESTS":             5,
	"APP_LOGIN_BLOCK_TIME_IN_MINUTE":     5,
	"APP_RABBITMQ_APPOINTMENT_QUEUE":     "appointment_events",
	"APP_TEMPORARY_PASSWORD":             "clinic-staff-temp",
	"APP_ADMIN_PASSWORD":                 "admin_password",
	"APP_SLOT_LOCK_EXP_TIME_IN_SECOND":   10,
	"JWT_SECRET":                         "",
	"JWT_EXP_TIME_IN_HOUR":               12,
	"MONGODB_URI":                        "",
	"MONGODB_HOST":                       "localhost",
	"MONGODB_PORT":                       "27017",
	"MONGODB_USERNAME":                   "",
	"MONGODB_PASSWORD":                   "",
	"MONGODB_DB_NAME":                    "clinic",
	"REDIS_HOST":                         "localhost",
	"REDIS_PORT":                         "6379",
	"REDIS_PASSWORD":                     "",
	"REDIS_DB":                           0,
	"RABBITMQ_HOST":                      "",
	"RABBITMQ_PORT":                      "5672",
	"RABBITMQ_USERNAME":                  "guest",
	"RABBITMQ_PASSWORD":                  "guest",
	"LOGGER_LEVEL":                       "info",
	"LOGGER_OUTPUT_FILENAME":             "logger.log",
	"LOGGER_OUTPUT_ERROR_FILENAME":       "logger_error.log",
}

// Load reads envFiles into the process environment (missing files are
// skipped, already exported variables win) and decodes the result.
func Load(envFiles ...string) (*InternalConfig, *DriverConfig, error) {
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	env := new(environment)
	if err := v.Unmarshal(env); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}

	internalConfig, driverConfig := env.split()
	if err := internalConfig.Validate(driverConfig); err != nil {
		return nil, nil, err
	}
	return internalConfig, driverConfig, nil
}

func (env *environment) split() (*InternalConfig, *DriverConfig) {
	internalConfig := &InternalConfig{
		App: App{
			Env:      env.AppEnv,
			Version:  env.AppVersion,
			Timezone: env.AppTimezone,
		},
		HTTP: HTTP{
			Address:                    env.AppAddress,
			Port:                       env.AppPort,
			EndpointPrefix:             strings.Trim(env.AppEndpointPrefix, "/"),
			CORSAllowedOrigins:         splitAndTrim(env.AppCORSAllowedOrigins),
			ShutdownTimeoutInSecond:    env.AppShutdownTimeout,
			RequestTimeoutInSecond:     env.AppRequestTimeoutInSecond,
			RequestBodyLimitInMegabyte: env.AppRequestBodyLimitInMegabyte,
		},
		RateLimit: RateLimit{
			RequestsPerSecond:      env.AppMaxRequests,
			LoginMaxRequests:       env.AppLoginMaxRequests,
			LoginBlockTimeInMinute: env.AppLoginBlockTimeInMinute,
		},
		JWT: JWT{
			Secret:        env.JWTSecret,
			ExpTimeInHour: env.JWTExpTimeInHour,
		},
		Account: Account{
			TemporaryPassword: env.AppTemporaryPassword,
			AdminPassword:     env.AppAdminPassword,
		},
		Scheduling: Scheduling{
			SlotLockExpTimeInSecond: env.AppSlotLockExpTimeInSecond,
		},
		Messaging: Messaging{
			AppointmentQueue: env.AppRabbitMQAppointmentQueue,
		},
	}

	driverConfig := &DriverConfig{
		MongoDB: MongoDB{
			URI:      env.MongoDBURI,
			Host:     env.MongoDBHost,
			Port:     env.MongoDBPort,
			Username: env.MongoDBUsername,
			Password: env.MongoDBPassword,
			DbName:   env.MongoDBDbName,
		},
		Redis: Redis{
			Host:     env.RedisHost,
			Port:     env.RedisPort,
			Password: env.RedisPassword,
			DB:       env.RedisDB,
		},
		RabbitMQ: RabbitMQ{
			Host:     env.RabbitMQHost,
			Port:     env.RabbitMQPort,
			Username: env.RabbitMQUsername,
			Password: env.RabbitMQPassword,
		},
		Logger: Logger{
			Level:               env.LoggerLevel,
			OutputFileName:      env.LoggerOutputFileName,
			OutputErrorFileName: env.LoggerOutputErrorFileName,
		},
	}
	return internalConfig, driverConfig
}

func (c *InternalConfig) Validate(driverConfig *DriverConfig) error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.ExpTimeInHour <= 0 {
		errs = append(errs, errors.New("JWT_EXP_TIME_IN_HOUR must be positive"))
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil || c.App.Timezone == "" {
		errs = append(errs, fmt.Errorf(constvars.ErrDevInvalidTimezone, c.App.Timezone))
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("APP_MAX_REQUEST must be positive"))
	}
	if c.Scheduling.SlotLockExpTimeInSecond <= 0 {
		errs = append(errs, errors.New("APP_SLOT_LOCK_EXP_TIME_IN_SECOND must be positive"))
	}
	if c.Account.TemporaryPassword == "" {
		errs = append(errs, errors.New("APP_TEMPORARY_PASSWORD is required"))
	}
	if driverConfig.MongoDB.DbName == "" {
		errs = append(errs, errors.New("MONGODB_DB_NAME is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf(constvars.ErrDevInvalidConfig, errors.Join(errs...).Error())
	}
	return nil
}

func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
