package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// DefaultLogDir is the logs directory used when none is configured.
const DefaultLogDir = "logs"

// maxLogAge is how long old log files are kept.
const maxLogAge = 30 * 24 * time.Hour

// FileName returns the log file name for the given day.
func FileName(day time.Time) string {
	return fmt.Sprintf("yt-batch_%s.log", day.Format("2006-01-02"))
}

// Open creates the logs directory if needed and returns a logger writing to
// both console and the current day's log file, opened for append. The
// returned close function must be called at process exit.
func Open(dir string, console io.Writer, verbose bool) (*Logger, func() error, error) {
	if dir == "" {
		dir = DefaultLogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	logFilePath := filepath.Join(dir, FileName(time.Now()))
	f, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file %s: %w", logFilePath, err)
	}

	var out io.Writer = f
	if console != nil {
		out = io.MultiWriter(console, f)
	}

	l := New(out, verbose)
	if err := DeleteEmptyAndOldLogs(dir, logFilePath, time.Now()); err != nil {
		l.Warnf("failed to clean up old log files in %s: %v", dir, err)
	}
	return l, f.Close, nil
}

// DeleteEmptyAndOldLogs removes empty log files and log files older than 30
// days from dir, except for current.
func DeleteEmptyAndOldLogs(dir, current string, now time.Time) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() || path == current || filepath.Ext(path) != ".log" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		if info.Size() == 0 || info.ModTime().Before(now.Add(-maxLogAge)) {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}
