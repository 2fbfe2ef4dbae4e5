// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the shared zap logger. The console core writes to
// stderr because stdout carries result JSON; the file core rotates through
// lumberjack.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// New constructs a logger that tees JSON records to a rotating file and
// human-readable records to stderr. It never fails; with an unwritable log
// path the file core simply drops writes.
func New(cfg types.LoggingConfig) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{}

	if cfg.Path != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(rotator),
			zap.InfoLevel,
		))
	}

	consoleLevel := zap.InfoLevel
	if cfg.Debug {
		consoleLevel = zap.DebugLevel
	}
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	))

	return zap.New(zapcore.NewTee(cores...))
}
