package app

import (
	ilogger "paritybalance/internal/logger"

	"github.com/rs/zerolog"
)

type Logger = ilogger.Logger

func newLogger() (*Logger, error) { return ilogger.NewLogger() }

func setLogger(l *Logger) { ilogger.SetLogger(l) }

func closeLogger() error { return ilogger.CloseLogger() }

func activeLogger() *Logger { return ilogger.ActiveLogger() }

func logDebug(msg string) { ilogger.LogDebug(msg) }

func logInfo(msg string) { ilogger.LogInfo(msg) }

func logWarn(msg string) { ilogger.LogWarn(msg) }

func logError(msg string) { ilogger.LogError(msg) }

func logEvent(lvl zerolog.Level) *zerolog.Event { return ilogger.Event(lvl) }
