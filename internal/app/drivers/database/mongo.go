package database

import (
	"clinic-staff-service/internal/app/config"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database", zap.String("database", driverConfig.MongoDB.DbName))
	return client
}

func mongoConnectionString(mongoConfig config.MongoDB) string {
	if mongoConfig.URI != "" {
		return mongoConfig.URI
	}
	if mongoConfig.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", mongoConfig.Host, mongoConfig.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		mongoConfig.Username,
		mongoConfig.Password,
		mongoConfig.Host,
		mongoConfig.Port,
	)
}
