package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the connected drivers from startup into route wiring.
// RabbitMQ is nil when no broker is configured.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

type InternalConfig struct {
	App        App
	HTTP       HTTP
	RateLimit  RateLimit
	JWT        JWT
	Account    Account
	Scheduling Scheduling
	Messaging  Messaging
}

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	RabbitMQ RabbitMQ
	Logger   Logger
}

type App struct {
	Env      string
	Version  string
	Timezone string
}

type HTTP struct {
	Address                    string
	Port                       string
	EndpointPrefix             string
	CORSAllowedOrigins         []string
	ShutdownTimeoutInSecond    int
	RequestTimeoutInSecond     int
	RequestBodyLimitInMegabyte int
}

type RateLimit struct {
	RequestsPerSecond      int
	LoginMaxRequests       int
	LoginBlockTimeInMinute int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Account holds the credentials handed to new staff and the seeded admin.
type Account struct {
	TemporaryPassword string
	AdminPassword     string
}

type Scheduling struct {
	SlotLockExpTimeInSecond int
}

type Messaging struct {
	AppointmentQueue string
}

type MongoDB struct {
	URI      string
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

func (a App) IsProduction() bool {
	return a.Env == "production"
}

func (a App) IsDevelopment() bool {
	return a.Env == "development"
}

// Enabled reports whether appointment events should be published.
func (r RabbitMQ) Enabled() bool {
	return r.Host != ""
}
