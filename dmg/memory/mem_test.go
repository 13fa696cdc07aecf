package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corewave/dmgcore/dmg/addr"
)

func TestMMUPlainRAMRoundTrips(t *testing.T) {
	m := New()
	m.Write(0xC000, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0xC000))
}

func TestMMUEchoRAMWriteMirrorsToWRAM(t *testing.T) {
	m := New()
	m.Write(0xE000, 0x7A)

	assert.Equal(t, byte(0x7A), m.Read(0xE000))
	assert.Equal(t, byte(0x7A), m.Read(0xC000))
}

func TestMMUUnusableRegionDropsWrites(t *testing.T) {
	m := New()
	m.Write(0xFEA0, 0x11)
	assert.Equal(t, byte(0), m.Read(0xFEA0))
}

func TestMMUDIVWriteAlwaysResetsRegardlessOfValue(t *testing.T) {
	m := New()
	m.Tick(300)
	assert.NotEqual(t, byte(0), m.Read(addr.DIV))

	m.Write(addr.DIV, 0xFF)
	assert.Equal(t, byte(0), m.Read(addr.DIV))
}

func TestMMULYWriteAlwaysResetsRegardlessOfValue(t *testing.T) {
	m := New()
	m.Write(addr.LY, 99) // not yet used by a PPU, but the MMU still pins it to 0
	assert.Equal(t, byte(0), m.Read(addr.LY))
}

func TestMMUJoypadRegisterRoutesThroughJoypad(t *testing.T) {
	m := New()
	m.Write(addr.P1, 0x10) // select action group
	m.Joypad.Press(JoypadA)

	assert.Equal(t, m.Joypad.Read(), m.Read(addr.P1))
}

func TestMMURequestInterruptSetsIFBit(t *testing.T) {
	m := New()
	m.RequestInterrupt(addr.VBlank)
	assert.Equal(t, byte(addr.VBlank), m.Read(addr.IF))
}

func TestMMUOAMDMACopiesFromSourceIntoOAM(t *testing.T) {
	m := New()
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xC000+i, byte(i))
	}

	m.Write(addr.DMA, 0xC0) // source = 0xC000

	for i := uint16(0); i < 0xA0; i++ {
		assert.Equal(t, byte(i), m.Read(addr.OAMStart+i))
	}
}

func TestMMUTimerRegistersRouteThroughTimer(t *testing.T) {
	m := New()
	m.Write(addr.TMA, 0x55)
	assert.Equal(t, byte(0x55), m.Read(addr.TMA))
}

func TestMMUKeyPressCallbackFiresOnAnyPress(t *testing.T) {
	m := New()
	fired := false
	m.OnKeyPress(func() { fired = true })

	m.Joypad.Press(JoypadStart)
	assert.True(t, fired)
}

func TestMMUCartridgeBankedReadsRouteThroughMBC(t *testing.T) {
	rom := make([]byte, 0x10000)
	for i := range rom {
		rom[i] = byte(i / 0x4000)
	}
	rom[cartridgeTypeAddress] = 0x01 // MBC1

	cart, err := NewCartridgeWithData(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewWithCartridge(cart)

	m.Write(0x2000, 2) // select ROM bank 2
	assert.Equal(t, byte(2), m.Read(0x4000))
	assert.Equal(t, uint8(2), m.CurrentROMBank())
}
