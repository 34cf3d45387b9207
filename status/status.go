// Basic logging infrastructure that we can share and evolve.

package status

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogLevel indicates the level of logging that should be done.

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
	LogLevelCritical
)

// Implementations of this must be thread-safe.
type Logger interface {
	// Print only messages at level l or above
	SetLevel(l LogLevel)

	// Lower log level at least to l
	LowerLevelTo(l LogLevel)

	// Print on this stream, if installed
	SetStderr(w io.Writer)

	// Print at various levels.  None of these must exit or panic, the name indicates the log level
	// only.
	Debug(xs ...any)
	Debugf(format string, args ...any)

	Info(xs ...any)
	Infof(format string, args ...any)

	Warning(xs ...any)
	Warningf(format string, args ...any)

	Error(xs ...any)
	Errorf(format string, args ...any)
}

type StandardLogger struct {
	sync.Mutex
	level  LogLevel
	stderr io.Writer
}

// MT: Constant after initialization, thread-safe.
var defaultLogger Logger = &StandardLogger{
	level:  LogLevelError,
	stderr: os.Stderr,
}

func Default() Logger {
	return defaultLogger
}

func (sl *StandardLogger) SetLevel(l LogLevel) {
	sl.Lock()
	defer sl.Unlock()

	sl.level = l
}

func (sl *StandardLogger) LowerLevelTo(l LogLevel) {
	sl.Lock()
	defer sl.Unlock()

	if sl.level > l {
		sl.level = l
	}
}

func (sl *StandardLogger) SetStderr(stderr io.Writer) {
	sl.Lock()
	defer sl.Unlock()

	sl.stderr = stderr
}

func (sl *StandardLogger) emit(threshold LogLevel, tag, msg string) {
	if sl.level <= threshold && sl.stderr != nil {
		fmt.Fprintf(sl.stderr, "%s: %s\n", tag, msg)
	}
}

func (sl *StandardLogger) Debug(xs ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelDebug, "DEBUG", fmt.Sprint(xs...))
}

func (sl *StandardLogger) Debugf(format string, args ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelDebug, "DEBUG", fmt.Sprintf(format, args...))
}

func (sl *StandardLogger) Info(xs ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelInfo, "INFO", fmt.Sprint(xs...))
}

func (sl *StandardLogger) Infof(format string, args ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelInfo, "INFO", fmt.Sprintf(format, args...))
}

func (sl *StandardLogger) Warning(xs ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelWarning, "WARNING", fmt.Sprint(xs...))
}

func (sl *StandardLogger) Warningf(format string, args ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelWarning, "WARNING", fmt.Sprintf(format, args...))
}

func (sl *StandardLogger) Error(xs ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelError, "ERROR", fmt.Sprint(xs...))
}

func (sl *StandardLogger) Errorf(format string, args ...any) {
	sl.Lock()
	defer sl.Unlock()

	sl.emit(LogLevelError, "ERROR", fmt.Sprintf(format, args...))
}
