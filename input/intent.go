// Package input turns terminal events into semantic intents and per-tick controls
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Esc, Ctrl+C, Ctrl+Q
	IntentRestart     // r after death
	IntentToggleMute  // m, Ctrl+S
	IntentToggleStats // Tab
	IntentResize      // Terminal resize event

	// Play
	IntentMove      // WASD, arrows
	IntentDrawStart // Primary button pressed
	IntentDrawMove  // Cursor moved with primary button held
	IntentDrawEnd   // Primary button released
)

// Intent is one parsed action
type Intent struct {
	Type IntentType
	Move Direction // For IntentMove
	X, Y int       // Screen cell for draw intents
}

// Direction is a held movement key
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)
