package logger

import (
	"clinic-staff-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

const accessLogFileName = "access.log"

// NewLogrusLogger builds the access log writer. The request logger middleware
// renders its own timestamp, so the formatter's is disabled.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableQuote: true})
	if !internalConfig.App.IsProduction() {
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	file, err := os.OpenFile(accessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.WithError(err).Warn("access log file unavailable, writing to stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
