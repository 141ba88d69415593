package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	move := func(d Direction) Intent { return Intent{Type: IntentMove, Move: d} }
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyTab:    {Type: IntentToggleStats},
			tcell.KeyLeft:   move(DirLeft),
			tcell.KeyRight:  move(DirRight),
			tcell.KeyUp:     move(DirUp),
			tcell.KeyDown:   move(DirDown),
		},
		Runes: map[rune]Intent{
			'a': move(DirLeft),
			'd': move(DirRight),
			'w': move(DirUp),
			's': move(DirDown),
			'h': move(DirLeft),
			'l': move(DirRight),
			'k': move(DirUp),
			'j': move(DirDown),
			'r': {Type: IntentRestart},
			'm': {Type: IntentToggleMute},
		},
	}
}
