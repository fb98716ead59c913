// Package log provides a global logger for the project
package log

import (
	"context"
	"os"
	"strconv"

	"go.uber.org/zap"

	"playlistbot/constants/envvar"
	"playlistbot/utils/ctxutil"
)

// Logger is the global logger, used to derive package loggers
var Logger = initLogger()

func initLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

// VerboseLogsEnabled returns true if verbose logs are enabled
func VerboseLogsEnabled(ctx context.Context) bool {
	raw := os.Getenv(envvar.VerboseLogsEnabled)
	if raw == "" {
		return false
	}
	verboseLogsEnabled, err := strconv.ParseBool(raw)
	if err != nil {
		fields := ctxutil.ZapFields(ctx)
		Logger.With(zap.Error(err)).Warn("Failed to parse verbose logs enabled", fields...)
	}
	return verboseLogsEnabled
}
