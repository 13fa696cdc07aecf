// Package input routes backend-reported actions to the joypad (for game
// buttons) or to registered callbacks (for emulator-level controls),
// debouncing Press/Release events so a backend's own key-repeat can't
// flood the joypad with spurious transitions.
package input

import (
	"time"

	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/input/event"
	"github.com/corewave/dmgcore/dmg/memory"
)

const debounceDuration = 300 * time.Millisecond

// Manager dispatches Trigger calls to the joypad or to On-registered
// callbacks, depending on the action's category.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	joypad        *memory.Joypad
}

func NewManager(j *memory.Joypad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		joypad:        j,
	}
}

// On registers callback to run whenever act transitions through evt.
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles one action/event pair arriving from a backend.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	if evt == event.Press || evt == event.Release {
		if m.lastTriggered[act] == nil {
			m.lastTriggered[act] = make(map[event.Type]time.Time)
		}
		now := time.Now()
		if now.Sub(m.lastTriggered[act][evt]) < debounceDuration {
			return
		}
		m.lastTriggered[act][evt] = now
	}

	if key, ok := joypadKey(act); ok {
		switch evt {
		case event.Press:
			m.joypad.Press(key)
		case event.Release:
			m.joypad.Release(key)
		}
		return
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

func joypadKey(act action.Action) (memory.JoypadKey, bool) {
	switch act {
	case action.GBButtonA:
		return memory.JoypadA, true
	case action.GBButtonB:
		return memory.JoypadB, true
	case action.GBButtonStart:
		return memory.JoypadStart, true
	case action.GBButtonSelect:
		return memory.JoypadSelect, true
	case action.GBDPadUp:
		return memory.JoypadUp, true
	case action.GBDPadDown:
		return memory.JoypadDown, true
	case action.GBDPadLeft:
		return memory.JoypadLeft, true
	case action.GBDPadRight:
		return memory.JoypadRight, true
	default:
		return 0, false
	}
}
