package memory

import "github.com/corewave/dmgcore/dmg/bit"

// JoypadKey is one of the eight logical Game Boy buttons. The values
// match the bit assignments the host input layer uses to report
// press/release events.
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// Joypad models the P1 register as the hardware actually behaves: a
// 2-bit selector (bits 4-5, the only writable bits) and an 8-bit button shadow
// (1 = released, 0 = pressed) that reads are synthesized from.
type Joypad struct {
	shadow   uint8 // bit i = JoypadKey(i), 1 = released
	selector uint8 // bits 4-5 only

	// RequestInterrupt is called on a released->pressed transition for
	// a key whose group is currently selected.
	RequestInterrupt func()
	// OnAnyPress is called on every press, regardless of selection; the
	// core uses it to clear the CPU's STOP flag.
	OnAnyPress func()
}

// NewJoypad returns a joypad with every button released and no group selected.
func NewJoypad() *Joypad {
	return &Joypad{shadow: 0xFF, selector: 0x30}
}

// Press marks key as pressed, requesting the Joypad interrupt if its
// group is selected and the key was not already held down.
func (j *Joypad) Press(key JoypadKey) {
	idx := uint8(key)
	wasReleased := bit.IsSet(idx, j.shadow)
	j.shadow = bit.Reset(idx, j.shadow)

	if wasReleased && j.groupSelected(key) && j.RequestInterrupt != nil {
		j.RequestInterrupt()
	}
	if j.OnAnyPress != nil {
		j.OnAnyPress()
	}
}

// Release marks key as released.
func (j *Joypad) Release(key JoypadKey) {
	j.shadow = bit.Set(uint8(key), j.shadow)
}

func (j *Joypad) groupSelected(key JoypadKey) bool {
	if key <= JoypadDown {
		return !bit.IsSet(4, j.selector)
	}
	return !bit.IsSet(5, j.selector)
}

// WriteSelector updates the P1 selector bits (4-5); all other bits of
// a P1 write are ignored, since P1 is otherwise read-only.
func (j *Joypad) WriteSelector(value byte) {
	j.selector = value & 0x30
}

// Read synthesizes the P1 register: selector bits echoed back, bits
// 6-7 pinned high, and bits 0-3 formed by ANDing in whichever shadow
// nibble(s) the selector currently exposes.
func (j *Joypad) Read() byte {
	result := uint8(0xC0) | j.selector | 0x0F

	if !bit.IsSet(4, j.selector) {
		result &= 0xF0 | (j.shadow & 0x0F)
	}
	if !bit.IsSet(5, j.selector) {
		result &= 0xF0 | ((j.shadow >> 4) & 0x0F)
	}

	return result
}
