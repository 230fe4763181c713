package logger

import (
	"clinic-staff-service/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	t.Run("Configured level is honoured", func(t *testing.T) {
		log, err := NewZapLogger(&config.DriverConfig{Logger: config.Logger{Level: "debug"}}, internalConfig)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		log, err := NewZapLogger(&config.DriverConfig{Logger: config.Logger{Level: "verbose"}}, internalConfig)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
	})

	t.Run("Warn level drops info", func(t *testing.T) {
		log, err := NewZapLogger(&config.DriverConfig{Logger: config.Logger{Level: "warn"}}, internalConfig)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
	})
}

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger(&config.InternalConfig{App: config.App{Env: "development"}})

	formatter, isText := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, isText)
	assert.True(t, formatter.DisableTimestamp)
}
