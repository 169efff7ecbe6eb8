package input

import "github.com/lixenwraith/serpent/core"

// IntentType classifies what a key press asks the game to do
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentTurn
	IntentPause
	IntentRestart
	IntentToggleMute
	IntentQuit
)

// Intent is a decoded player input. Direction is meaningful only for
// IntentTurn.
type Intent struct {
	Type      IntentType
	Direction core.Direction
}

func turn(d core.Direction) Intent {
	return Intent{Type: IntentTurn, Direction: d}
}
