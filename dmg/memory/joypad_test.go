package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoypadDefaultsToAllReleasedNoGroupSelected(t *testing.T) {
	j := NewJoypad()
	assert.Equal(t, byte(0xFF), j.Read())
}

func TestJoypadDPadGroupReadsPressedButtons(t *testing.T) {
	j := NewJoypad()
	j.WriteSelector(0x20) // select d-pad group (bit 4 clear)
	j.Press(JoypadUp)

	assert.Equal(t, byte(0xEB), j.Read()) // bit 2 (up) cleared, bit 4 (selector) clear
}

func TestJoypadActionGroupReadsPressedButtons(t *testing.T) {
	j := NewJoypad()
	j.WriteSelector(0x10) // select action group (bit 5 clear)
	j.Press(JoypadA)

	assert.Equal(t, byte(0xDE), j.Read()) // bit 0 (A) cleared, bit 5 (selector) clear
}

func TestJoypadNoGroupSelectedReadsAllHigh(t *testing.T) {
	j := NewJoypad()
	j.WriteSelector(0x30) // neither group selected
	j.Press(JoypadA)
	j.Press(JoypadUp)

	assert.Equal(t, byte(0xFF), j.Read())
}

func TestJoypadPressRequestsInterruptOnlyWhenGroupSelectedAndNewlyPressed(t *testing.T) {
	j := NewJoypad()
	fired := 0
	j.RequestInterrupt = func() { fired++ }

	j.Press(JoypadA) // action group not selected: no interrupt
	assert.Equal(t, 0, fired)

	j.WriteSelector(0x10) // select action group
	j.Release(JoypadA)
	j.Press(JoypadA) // released -> pressed transition while selected
	assert.Equal(t, 1, fired)

	j.Press(JoypadA) // already pressed: no repeat interrupt
	assert.Equal(t, 1, fired)
}

func TestJoypadOnAnyPressFiresRegardlessOfSelection(t *testing.T) {
	j := NewJoypad()
	fired := 0
	j.OnAnyPress = func() { fired++ }

	j.WriteSelector(0x30) // no group selected
	j.Press(JoypadStart)

	assert.Equal(t, 1, fired)
}

func TestJoypadWriteSelectorIgnoresNonSelectorBits(t *testing.T) {
	j := NewJoypad()
	j.WriteSelector(0xFF)

	assert.Equal(t, byte(0xFF), j.Read())
}
