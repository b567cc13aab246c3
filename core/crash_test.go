package core

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var out bytes.Buffer
	codes := make(chan int, 1)

	prevOut, prevExit := crashOut, crashExit
	crashOut = &out
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		RegisterScreen(nil)
	})
	return &out, codes
}

func TestHandleCrashNil(t *testing.T) {
	out, codes := captureCrash(t)
	HandleCrash(nil)

	if out.Len() != 0 {
		t.Errorf("nil panic wrote %q", out.String())
	}
	select {
	case <-codes:
		t.Error("nil panic should not exit")
	default:
	}
}

func TestHandleCrashFinalizesScreen(t *testing.T) {
	out, codes := captureCrash(t)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	RegisterScreen(screen)

	HandleCrash("boom")

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("missing crash line in %q", out.String())
	}
	if !strings.Contains(out.String(), "Stack Trace:") {
		t.Error("missing stack trace")
	}

	crashMu.Lock()
	defer crashMu.Unlock()
	if crashScreen != nil {
		t.Error("screen should be unregistered after crash")
	}
}

func TestGoRecovers(t *testing.T) {
	out, codes := captureCrash(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	RegisterScreen(screen)

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic not recovered")
	}
	if !strings.Contains(out.String(), "worker failed") {
		t.Errorf("missing panic value in %q", out.String())
	}
}
