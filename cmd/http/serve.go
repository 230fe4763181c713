package main

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/services/core/users"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func runServe() error {
	bootstrap, err := loadBootstrap(true)
	if err != nil {
		return err
	}
	log := bootstrap.Logger
	defer log.Sync()
	defer closeDrivers(bootstrap)

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Error("Failed to bootstrap the app", zap.Error(err))
		return err
	}

	server := &http.Server{
		Addr:    bootstrap.InternalConfig.HTTP.Port,
		Handler: bootstrap.Router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server started", zap.String("port", bootstrap.InternalConfig.HTTP.Port), zap.String("version", version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("Server failed to start", zap.Error(err))
		return err
	case <-c:
	}

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(bootstrap.InternalConfig.HTTP.ShutdownTimeoutInSecond),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exiting")
	return nil
}

func runSeed() error {
	bootstrap, err := loadBootstrap(false)
	if err != nil {
		return err
	}
	defer bootstrap.Logger.Sync()
	defer closeDrivers(bootstrap)

	repos := newRepositories(bootstrap)
	userUsecase := users.NewUserUsecase(repos.users, bootstrap.InternalConfig, bootstrap.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return prepareStore(ctx, bootstrap, repos, userUsecase)
}

func closeDrivers(bootstrap *config.Bootstrap) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if bootstrap.RabbitMQ != nil {
		bootstrap.RabbitMQ.Close()
	}
	if bootstrap.Redis != nil {
		bootstrap.Redis.Close()
	}
	if bootstrap.MongoDB != nil {
		bootstrap.MongoDB.Disconnect(ctx)
	}
}
