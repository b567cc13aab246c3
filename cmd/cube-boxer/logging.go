package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "cube-boxer.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log and slog output to logs/cube-boxer.log when debug is set
// Without debug every log line is discarded; the terminal belongs to the screen
func setupLogging(debug bool) *os.File {
	if !debug {
		discardLogs()
		return nil
	}

	f, err := openLogFile(logDir)
	if err != nil {
		discardLogs()
		return nil
	}
	routeLogs(f)
	return f
}

func discardLogs() {
	slog.SetDefault(slog.New(slog.DiscardHandler))
	log.SetOutput(io.Discard)
}

// routeLogs sends slog records at debug level and plain log lines to w
// slog.SetDefault redirects the log package into slog, so the log writer is set after it
func routeLogs(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// openLogFile creates dir, rotates an oversized log and opens the current one for append
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotateLog(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// rotateLog renames a log past maxLogSize to a timestamped name
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("cube-boxer-%s.log", stamp))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
