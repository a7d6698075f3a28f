package logger

import (
	"sync"

	"wardrobe-service/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// InitLogger builds the global logger from configuration. Safe to call once
// at startup; later GetLogger calls reuse the same instance.
func InitLogger(appConfig *config.Config) {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}

		level, err := zapcore.ParseLevel(appConfig.Log.Level)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}

		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
}

// GetLogger returns the global logger, building a default one if InitLogger
// was never called (tests).
func GetLogger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
