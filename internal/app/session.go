package app

import (
	"fmt"
	"sync"

	ilogger "paritybalance/internal/logger"
)

type session struct {
	keepLog bool
}

func runWithLoggerAndCleanup(fn func(s *session) int) (exitCode int) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(stderrWriter, "ERROR: failed to initialize logger: %v\n", err)
		return exitBadInput
	}
	setLogger(logger)
	s := &session{}

	defer func() {
		logger.Flush()
		if err := closeLogger(); err != nil {
			fmt.Fprintf(stderrWriter, "ERROR: failed to close logger: %v\n", err)
		}

		if exitCode != exitOK {
			if entries := logger.ExtractRecentErrors(10); len(entries) > 0 {
				for _, entry := range entries {
					fmt.Fprintf(stderrWriter, "ERROR: %s\n", entry)
				}
			}
		}
		if s.keepLog {
			fmt.Fprintf(stderrWriter, "Log file: %s\n", logger.Path())
			return
		}
		_ = logger.RemoveLogFile()
	}()

	wait := scheduleStartupCleanup()
	defer wait()

	return fn(s)
}

// scheduleStartupCleanup removes logs of dead runs in the background and
// returns a func that waits for it.
func scheduleStartupCleanup() (wait func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := cleanupOldLogsFn()
		if err != nil {
			logWarn(fmt.Sprintf("startup log cleanup: %v", err))
			return
		}
		if stats.Deleted > 0 {
			logInfo(fmt.Sprintf("startup log cleanup removed %d stale file(s)", stats.Deleted))
		}
	}()
	return wg.Wait
}

func runCleanupMode() int {
	stats, err := cleanupOldLogsFn()
	if err != nil {
		fmt.Fprintf(stderrWriter, "Cleanup failed: %v\n", err)
		return exitBadInput
	}

	fmt.Fprintln(stdoutWriter, "Cleanup completed")
	fmt.Fprintf(stdoutWriter, "Files scanned: %d\n", stats.Scanned)
	fmt.Fprintf(stdoutWriter, "Files deleted: %d\n", stats.Deleted)
	fmt.Fprintf(stdoutWriter, "Files kept: %d\n", stats.Kept)
	if stats.Errors > 0 {
		fmt.Fprintf(stdoutWriter, "Deletion errors: %d\n", stats.Errors)
	}
	return exitOK
}

var cleanupOldLogsFn = ilogger.CleanupOldLogs
