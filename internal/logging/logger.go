// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

// Package logging builds the loggers used by the stackdemo command.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at the given level.
func New(level string, w io.Writer) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapLevel),
	)
	return zap.New(core), nil
}

// StdLogger adapts logger to a *log.Logger whose lines are logged at
// debug level, for use with genericstack.SetDebugLogger.
func StdLogger(logger *zap.Logger) *log.Logger {
	stdLog, err := zap.NewStdLogAt(logger.Named("genericstack"), zapcore.DebugLevel)
	if err != nil {
		// Only fails for levels zap does not know about
		panic(err)
	}
	return stdLog
}
