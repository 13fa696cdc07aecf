// Package action enumerates the logical actions a backend can report,
// decoupling host key names from the eight Game Boy buttons and the
// handful of emulator-level controls every backend shares.
package action

// Action is one input action recognized by the emulator.
type Action int

const (
	GBButtonA Action = iota
	GBButtonB
	GBButtonStart
	GBButtonSelect
	GBDPadUp
	GBDPadDown
	GBDPadLeft
	GBDPadRight

	EmulatorPauseToggle
	EmulatorQuit
)

// Category groups actions for routing: game input goes straight to the
// joypad, everything else is handled by the emulator driver.
type Category int

const (
	CategoryGameInput Category = iota
	CategoryEmulator
)

// Info carries the metadata needed to route and describe an action.
type Info struct {
	Category    Category
	Debounce    bool
	Description string
}

var infoByAction = map[Action]Info{
	GBButtonA:      {Category: CategoryGameInput, Description: "A button"},
	GBButtonB:      {Category: CategoryGameInput, Description: "B button"},
	GBButtonStart:  {Category: CategoryGameInput, Description: "Start button"},
	GBButtonSelect: {Category: CategoryGameInput, Description: "Select button"},
	GBDPadUp:       {Category: CategoryGameInput, Description: "D-Pad up"},
	GBDPadDown:     {Category: CategoryGameInput, Description: "D-Pad down"},
	GBDPadLeft:     {Category: CategoryGameInput, Description: "D-Pad left"},
	GBDPadRight:    {Category: CategoryGameInput, Description: "D-Pad right"},

	EmulatorPauseToggle: {Category: CategoryEmulator, Debounce: true, Description: "Toggle pause"},
	EmulatorQuit:        {Category: CategoryEmulator, Debounce: true, Description: "Quit"},
}

// GetInfo returns metadata for a, or an Emulator-category Info described
// as "unknown action" if a is not recognized.
func GetInfo(a Action) Info {
	if info, ok := infoByAction[a]; ok {
		return info
	}
	return Info{Category: CategoryEmulator, Description: "unknown action"}
}
