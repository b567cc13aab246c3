package input

import "github.com/lixenwraith/cube-boxer/target"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":        {IntentType: IntentQuit},
	"start":       {IntentType: IntentStart},
	"reset":       {IntentType: IntentReset},
	"toggle_mute": {IntentType: IntentToggleMute},

	// Left hand
	"left_move_left":  {IntentType: IntentMoveLeft, Hand: target.HandLeft},
	"left_move_right": {IntentType: IntentMoveRight, Hand: target.HandLeft},
	"left_punch":      {IntentType: IntentPunch, Hand: target.HandLeft},
	"left_jab":        {IntentType: IntentJab, Hand: target.HandLeft},

	// Right hand
	"right_move_left":  {IntentType: IntentMoveLeft, Hand: target.HandRight},
	"right_move_right": {IntentType: IntentMoveRight, Hand: target.HandRight},
	"right_punch":      {IntentType: IntentPunch, Hand: target.HandRight},
	"right_jab":        {IntentType: IntentJab, Hand: target.HandRight},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
