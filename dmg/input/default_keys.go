package input

import "github.com/corewave/dmgcore/dmg/input/action"

// DefaultKeyMap maps host key names to actions, shared across backends
// so each one doesn't invent its own scheme.
var DefaultKeyMap = map[string]action.Action{
	"z":     action.GBButtonA,
	"x":     action.GBButtonB,
	"Enter": action.GBButtonStart,
	"Shift": action.GBButtonSelect,
	"Up":    action.GBDPadUp,
	"Down":  action.GBDPadDown,
	"Left":  action.GBDPadLeft,
	"Right": action.GBDPadRight,

	"w": action.GBDPadUp,
	"s": action.GBDPadDown,
	"a": action.GBDPadLeft,
	"d": action.GBDPadRight,

	"Space":  action.EmulatorPauseToggle,
	"p":      action.EmulatorPauseToggle,
	"Escape": action.EmulatorQuit,
	"q":      action.EmulatorQuit,
}

// GetDefaultMapping returns the action bound to key, if any.
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
