// Package logger provides the run logging context: leveled line loggers that
// write to the console and to a dated log file under the logs directory.
package logger

import (
	"io"
	"log"
	"os"
)

const logFlags = log.Ldate | log.Ltime | log.Lmsgprefix

// Logger writes one line per event, prefixed with date, time and level.
type Logger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	verbose     bool
}

// New creates a logger writing to out. DEBUG lines are only written when
// verbose is set.
func New(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}

	return &Logger{
		debugLogger: log.New(out, "[DEBUG]: ", logFlags),
		infoLogger:  log.New(out, "[INFO]: ", logFlags),
		warnLogger:  log.New(out, "[WARNING]: ", logFlags),
		errorLogger: log.New(out, "[ERROR]: ", logFlags),
		verbose:     verbose,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, false)
}

// Debugf logs at DEBUG level when the logger is verbose.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.debugLogger.Printf(format, args...)
}

// Infof logs at INFO level.
func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warnf logs at WARNING level.
func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Errorf logs at ERROR level.
func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}
