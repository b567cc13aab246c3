package input

import "github.com/lixenwraith/cube-boxer/target"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C
	IntentStart      // Space
	IntentReset      // r
	IntentToggleMute // m

	// Hand intents, carry the hand they act on
	IntentMoveLeft  // a / j
	IntentMoveRight // d / l
	IntentPunch     // w / i, strong forward strike
	IntentJab       // s / k, weak forward strike
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentStart:
		return "start"
	case IntentReset:
		return "reset"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentPunch:
		return "punch"
	case IntentJab:
		return "jab"
	default:
		return "none"
	}
}

// HandIntent reports whether the intent drives a hand
func (t IntentType) HandIntent() bool {
	return t >= IntentMoveLeft && t <= IntentJab
}

// Intent is a resolved key press
type Intent struct {
	Type IntentType
	Hand target.Hand // meaningful for hand intents only
}
