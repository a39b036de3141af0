package logger

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var active atomic.Pointer[Logger]

// SetLogger installs l as the process-wide logger.
func SetLogger(l *Logger) { active.Store(l) }

// CloseLogger uninstalls and closes the process-wide logger.
func CloseLogger() error {
	l := active.Swap(nil)
	if l == nil {
		return nil
	}
	return l.Close()
}

func ActiveLogger() *Logger { return active.Load() }

func logWarn(msg string) { ActiveLogger().Warn(msg) }

func LogDebug(msg string) { ActiveLogger().Debug(msg) }
func LogInfo(msg string)  { ActiveLogger().Info(msg) }
func LogWarn(msg string)  { ActiveLogger().Warn(msg) }
func LogError(msg string) { ActiveLogger().Error(msg) }

// Event starts a structured entry on the active logger; nil (a no-op) when
// none is installed.
func Event(lvl zerolog.Level) *zerolog.Event { return ActiveLogger().Event(lvl) }
