package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dash-arena/vmath"
)

// HoldWindow is how long a key counts as held after its last press or repeat
// Terminals report no key release, so held state decays instead
const HoldWindow = 150 * time.Millisecond

// Machine parses tcell events into intents and tracks held state between ticks
type Machine struct {
	keyTable *KeyTable

	held [5]time.Time // Last press per Direction

	drawing bool
	cursorX int
	cursorY int
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process parses one event, updating held state as of now
func (m *Machine) Process(ev tcell.Event, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent, ok := m.keyTable.SpecialKeys[ev.Key()]
		if !ok && ev.Key() == tcell.KeyRune {
			intent, ok = m.keyTable.Runes[ev.Rune()]
		}
		if !ok {
			return Intent{}
		}
		if intent.Type == IntentMove {
			m.held[intent.Move] = now
		}
		return intent

	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !m.drawing:
			m.drawing, m.cursorX, m.cursorY = true, x, y
			return Intent{Type: IntentDrawStart, X: x, Y: y}
		case pressed:
			m.cursorX, m.cursorY = x, y
			return Intent{Type: IntentDrawMove, X: x, Y: y}
		case m.drawing:
			m.drawing = false
			return Intent{Type: IntentDrawEnd, X: x, Y: y}
		}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// MoveDir sums the directions held as of now, unnormalized
func (m *Machine) MoveDir(now time.Time) vmath.Vec2 {
	var dir vmath.Vec2
	active := func(d Direction) bool {
		t := m.held[d]
		return !t.IsZero() && now.Sub(t) <= HoldWindow
	}
	if active(DirLeft) {
		dir.X -= vmath.Scale
	}
	if active(DirRight) {
		dir.X += vmath.Scale
	}
	if active(DirUp) {
		dir.Y += vmath.Scale
	}
	if active(DirDown) {
		dir.Y -= vmath.Scale
	}
	return dir
}

// Cursor returns the draw cursor cell, ok is false when the button is up
func (m *Machine) Cursor() (x, y int, ok bool) {
	return m.cursorX, m.cursorY, m.drawing
}

// Reset clears held state
func (m *Machine) Reset() {
	m.held = [5]time.Time{}
	m.drawing = false
}
