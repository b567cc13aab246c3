package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cube-boxer/target"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Hand       target.Hand
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Esc, Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: left hand on WASD, right hand on IJKL
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			' ': {IntentType: IntentStart},
			'r': {IntentType: IntentReset},
			'm': {IntentType: IntentToggleMute},

			'a': {IntentType: IntentMoveLeft, Hand: target.HandLeft},
			'd': {IntentType: IntentMoveRight, Hand: target.HandLeft},
			'w': {IntentType: IntentPunch, Hand: target.HandLeft},
			's': {IntentType: IntentJab, Hand: target.HandLeft},

			'j': {IntentType: IntentMoveLeft, Hand: target.HandRight},
			'l': {IntentType: IntentMoveRight, Hand: target.HandRight},
			'i': {IntentType: IntentPunch, Hand: target.HandRight},
			'k': {IntentType: IntentJab, Hand: target.HandRight},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Resolve maps a key event to an intent
func (kt *KeyTable) Resolve(ev *tcell.EventKey) (Intent, bool) {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = kt.Runes[unicode.ToLower(ev.Rune())]
	} else {
		entry, ok = kt.SpecialKeys[ev.Key()]
	}
	if !ok || entry.IntentType == IntentNone {
		return Intent{}, false
	}
	return Intent{Type: entry.IntentType, Hand: entry.Hand}, true
}
