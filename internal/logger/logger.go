package logger

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	logQueueSize      = 256
	fileBufferSize    = 32 * 1024
	maxRecentProblems = 100
)

// Logger writes zerolog JSON lines to a per-process file in the temp dir.
// Writes are handed to a single worker goroutine; Flush waits for the queue
// to drain.
type Logger struct {
	path string
	file *os.File
	zl   zerolog.Logger

	level atomic.Int32

	mu      sync.RWMutex
	closed  bool
	queue   chan []byte
	flushes chan chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error

	problemsMu sync.Mutex
	problems   []string
}

// NewLogger creates $TMPDIR/paritybalance-<pid>.log.
func NewLogger() (*Logger, error) { return NewLoggerWithSuffix("") }

// NewLoggerWithSuffix creates $TMPDIR/paritybalance-<pid>-<suffix>.log.
func NewLoggerWithSuffix(suffix string) (*Logger, error) {
	name := fmt.Sprintf("%s-%d", ToolName, os.Getpid())
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		name += "-" + sanitizeLogSuffix(suffix)
	}
	path := filepath.Join(os.TempDir(), name+".log")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{
		path:    path,
		file:    f,
		queue:   make(chan []byte, logQueueSize),
		flushes: make(chan chan struct{}),
		done:    make(chan struct{}),
	}
	l.level.Store(int32(zerolog.DebugLevel))
	l.zl = zerolog.New(queueWriter{l}).With().Timestamp().Int("pid", os.Getpid()).Logger()

	go l.run(bufio.NewWriterSize(f, fileBufferSize))
	return l, nil
}

type queueWriter struct{ l *Logger }

func (w queueWriter) Write(p []byte) (int, error) {
	w.l.mu.RLock()
	defer w.l.mu.RUnlock()
	if w.l.closed {
		return 0, io.ErrClosedPipe
	}
	// zerolog reuses p after Write returns.
	w.l.queue <- append([]byte(nil), p...)
	return len(p), nil
}

func (l *Logger) run(w *bufio.Writer) {
	defer close(l.done)
	for {
		select {
		case line, ok := <-l.queue:
			if !ok {
				_ = w.Flush()
				return
			}
			_, _ = w.Write(line)
		case ack := <-l.flushes:
			for drained := false; !drained; {
				select {
				case line, ok := <-l.queue:
					if !ok {
						drained = true
						break
					}
					_, _ = w.Write(line)
				default:
					drained = true
				}
			}
			_ = w.Flush()
			close(ack)
		}
	}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// SetLevel drops entries below lvl.
func (l *Logger) SetLevel(lvl zerolog.Level) {
	if l == nil {
		return
	}
	l.level.Store(int32(lvl))
}

func (l *Logger) enabled(lvl zerolog.Level) bool {
	return l != nil && lvl >= zerolog.Level(l.level.Load())
}

func (l *Logger) log(lvl zerolog.Level, msg string) {
	if l == nil {
		return
	}
	if lvl >= zerolog.WarnLevel {
		l.rememberProblem(msg)
	}
	if !l.enabled(lvl) {
		return
	}
	l.zl.WithLevel(lvl).Msg(msg)
}

func (l *Logger) Debug(msg string) { l.log(zerolog.DebugLevel, msg) }
func (l *Logger) Info(msg string)  { l.log(zerolog.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.log(zerolog.WarnLevel, msg) }
func (l *Logger) Error(msg string) { l.log(zerolog.ErrorLevel, msg) }

// Event starts a structured entry at lvl. The returned event is nil, and
// therefore a no-op, when lvl is filtered out.
func (l *Logger) Event(lvl zerolog.Level) *zerolog.Event {
	if !l.enabled(lvl) {
		return nil
	}
	return l.zl.WithLevel(lvl)
}

func (l *Logger) rememberProblem(msg string) {
	l.problemsMu.Lock()
	defer l.problemsMu.Unlock()
	l.problems = append(l.problems, msg)
	if over := len(l.problems) - maxRecentProblems; over > 0 {
		l.problems = append(l.problems[:0], l.problems[over:]...)
	}
}

// ExtractRecentErrors returns up to maxEntries of the most recent warning and
// error messages, oldest first.
func (l *Logger) ExtractRecentErrors(maxEntries int) []string {
	if l == nil || maxEntries <= 0 {
		return nil
	}
	l.problemsMu.Lock()
	defer l.problemsMu.Unlock()
	if len(l.problems) == 0 {
		return nil
	}
	start := len(l.problems) - maxEntries
	if start < 0 {
		start = 0
	}
	return append([]string(nil), l.problems[start:]...)
}

// Flush blocks until every queued entry is on disk or the timeout passes.
func (l *Logger) Flush() {
	if l == nil {
		return
	}
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return
	}
	ack := make(chan struct{})
	select {
	case l.flushes <- ack:
	case <-l.done:
		l.mu.RUnlock()
		return
	}
	l.mu.RUnlock()

	select {
	case <-ack:
	case <-time.After(5 * time.Second):
	}
}

// Close drains the queue and closes the file. The file is kept on disk.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		close(l.queue)
		l.mu.Unlock()

		<-l.done
		l.closeErr = l.file.Close()
	})
	return l.closeErr
}

// RemoveLogFile closes the logger and deletes its file.
func (l *Logger) RemoveLogFile() error {
	if l == nil {
		return nil
	}
	_ = l.Close()
	if err := removeLogFileFn(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeLogSuffix maps arbitrary text onto a file-name-safe, non-empty
// suffix. Distinct inputs that differ only in stripped punctuation get a short
// hash so they do not collide.
func sanitizeLogSuffix(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	cleaned := strings.Trim(b.String(), ".-_")
	if cleaned == "" {
		cleaned = "log"
	}
	if cleaned != raw {
		h := fnv.New32a()
		_, _ = h.Write([]byte(raw))
		cleaned = fmt.Sprintf("%s-%08x", cleaned, h.Sum32())
	}
	return cleaned
}
