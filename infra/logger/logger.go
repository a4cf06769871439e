package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process-wide zap logger. Production config in any
// environment except "development", where a console encoder is friendlier.
func NewLogger(environment string) *zap.Logger {
	if environment == "development" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		log, err := cfg.Build()
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		return log
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	return log
}
