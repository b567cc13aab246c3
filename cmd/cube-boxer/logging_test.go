package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// keepLogDefaults restores the global slog and log state after the test
func keepLogDefaults(t *testing.T) {
	t.Helper()
	prevDefault := slog.Default()
	prevOut, prevFlags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
}

func TestSetupLoggingDisabled(t *testing.T) {
	keepLogDefaults(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("log file opened without debug")
	}
	if slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("slog default still emits errors")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log writer = %T, want io.Discard", log.Writer())
	}
}

func TestRouteLogsSharesWriter(t *testing.T) {
	keepLogDefaults(t)

	var buf bytes.Buffer
	routeLogs(&buf)

	log.Print("legacy line")
	slog.Debug("structured line", "run", 7)

	out := buf.String()
	if !strings.Contains(out, "legacy line") {
		t.Errorf("log package line missing:\n%s", out)
	}
	// log output goes straight to the writer, not through the slog handler
	if strings.Contains(out, `msg="legacy line"`) {
		t.Errorf("log package line was wrapped by slog:\n%s", out)
	}
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "run=7") {
		t.Errorf("slog debug record missing:\n%s", out)
	}
}

func TestOpenLogFileCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", logDir)

	f, err := openLogFile(dir)
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	defer f.Close()

	if f.Name() != filepath.Join(dir, logFileName) {
		t.Errorf("opened %s", f.Name())
	}
}

func TestOpenLogFileRotatesOversized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("write oversized log: %v", err)
	}

	f, err := openLogFile(dir)
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("dir holds %d files, want current and rotated", len(entries))
	}
	info, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("fresh log size = %d, want 0", info.Size())
	}
}

func TestOpenLogFileAppendsBelowLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, logFileName)
	if err := os.WriteFile(path, []byte("earlier run\n"), 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	f, err := openLogFile(dir)
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	if _, err := f.WriteString("this run\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "earlier run\nthis run\n" {
		t.Errorf("log = %q", data)
	}
}
