package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/core"
)

// KeyTable maps terminal key events to game intents
type KeyTable struct {
	// Special keys (arrows, Escape, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Plain rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: w/a/s/d and the arrow
// keys steer, p pauses, r restarts, m toggles sound, q/Escape/Ctrl+C
// quit.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     turn(core.North),
			tcell.KeyDown:   turn(core.South),
			tcell.KeyRight:  turn(core.East),
			tcell.KeyLeft:   turn(core.West),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': turn(core.North),
			's': turn(core.South),
			'd': turn(core.East),
			'a': turn(core.West),
			'p': {Type: IntentPause},
			'r': {Type: IntentRestart},
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
		},
	}
}

// Translate decodes a terminal event into an intent. Unknown keys and
// non-key events yield IntentNone.
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Intent{}
	}

	if key.Key() == tcell.KeyRune {
		if intent, ok := kt.Runes[key.Rune()]; ok {
			return intent
		}
		return Intent{}
	}
	if intent, ok := kt.SpecialKeys[key.Key()]; ok {
		return intent
	}
	return Intent{}
}
