// Package terminal restores a sane terminal after the screen owner dies without cleanup
package terminal

import (
	"io"
	"os"
)

var (
	csiRIS            = []byte("\x1bc") // Reset to Initial State
	csiSGR0           = []byte("\x1b[0m")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiPasteOff       = []byte("\x1b[?2004l")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if the screen cannot be finalized normally
func EmergencyReset(w io.Writer) {
	writeResetSequences(w)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored
	resetTerminalMode()
}

func writeResetSequences(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff,
		csiMouseDragOff,
		csiMouseClickOff,
		csiMouseSGROff,
		csiPasteOff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
		csiRIS,
	} {
		w.Write(seq)
	}
}
