// Package memory implements the DMG address space: the 64 KiB backing
// array, cartridge bank switching, the memory-mapped joypad and timer
// registers, and OAM DMA. It is the MMU component from the core
// design: CPU, PPU and Timer all read and write through it, and it is
// the sole interrupt requester they share.
package memory

import (
	"fmt"

	"github.com/corewave/dmgcore/dmg/addr"
)

// MMU is the flat 16-bit address space plus the bank controller,
// joypad and timer state layered on top of it.
type MMU struct {
	memory [0x10000]byte

	cart *Cartridge
	mbc  MBC

	Joypad *Joypad
	timer  *Timer

	onKeyPress func()
}

// New creates an MMU with no cartridge inserted (ROM reads return the
// empty cartridge's zero-filled image).
func New() *MMU {
	return NewWithCartridge(NewCartridge())
}

// NewWithCartridge creates an MMU with cart already loaded and its
// bank controller configured from the cartridge header.
func NewWithCartridge(cart *Cartridge) *MMU {
	m := &MMU{
		cart:   cart,
		Joypad: NewJoypad(),
		timer:  NewTimer(),
	}

	switch cart.kind {
	case mbcNone:
		m.mbc = newNoMBC(cart.data)
	case mbcMBC1:
		m.mbc = newMBC1(cart.data, cart.ramBanks)
	case mbcMBC2:
		m.mbc = newMBC2(cart.data)
	default:
		panic(fmt.Sprintf("unreachable: unknown mbc kind %d", cart.kind))
	}

	m.Joypad.RequestInterrupt = func() { m.RequestInterrupt(addr.Joypad) }
	m.Joypad.OnAnyPress = func() {
		if m.onKeyPress != nil {
			m.onKeyPress()
		}
	}
	m.timer.RequestInterrupt = func() { m.RequestInterrupt(addr.Timer) }

	return m
}

// OnKeyPress registers a callback invoked on every joypad press,
// regardless of selection; the frame driver uses this to clear STOP.
func (m *MMU) OnKeyPress(f func()) {
	m.onKeyPress = f
}

// Tick advances the timer by cycles T-cycles. Called once per CPU step
// by the frame driver, before the PPU is advanced.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
}

// RequestInterrupt sets the IF bit for the given interrupt source.
func (m *MMU) RequestInterrupt(i addr.Interrupt) {
	m.memory[addr.IF] |= uint8(i)
}

// Read returns the byte visible at address, decoding cartridge banking
// and the joypad and timer registers as spec.md 4.1 describes. Echo RAM
// reads come straight from the backing array.
func (m *MMU) Read(address uint16) byte {
	switch {
	case address <= 0x7FFF:
		return m.mbc.Read(address)
	case address >= 0xA000 && address <= 0xBFFF:
		return m.mbc.Read(address)
	case address == addr.P1:
		return m.Joypad.Read()
	case address == addr.DIV, address == addr.TIMA, address == addr.TMA, address == addr.TAC:
		return m.timer.Read(address)
	default:
		return m.memory[address]
	}
}

// Write dispatches a write to the appropriate region: bank-control
// commands below 0x8000, external RAM, the DIV/LY reset quirks, OAM
// DMA, echo-RAM mirroring, the dropped 0xFEA0-0xFEFF hole, and the
// plain backing array everywhere else.
func (m *MMU) Write(address uint16, value byte) {
	switch {
	case address <= 0x7FFF:
		m.mbc.Write(address, value)
	case address >= 0xA000 && address <= 0xBFFF:
		m.mbc.Write(address, value)
	case address == addr.DIV:
		m.timer.Write(address, 0)
	case address == addr.LY:
		m.memory[address] = 0
	case address == addr.TIMA, address == addr.TMA, address == addr.TAC:
		m.timer.Write(address, value)
	case address == addr.DMA:
		m.runOAMDMA(value)
		m.memory[address] = value
	case address == addr.P1:
		m.Joypad.WriteSelector(value)
	case address >= 0xFEA0 && address <= 0xFEFF:
		// dropped
	case address >= 0xE000 && address <= 0xFDFF:
		m.memory[address] = value
		m.memory[address-0x2000] = value
	default:
		m.memory[address] = value
	}
}

// runOAMDMA copies 0xA0 bytes from source<<8 into OAM (0xFE00-0xFE9F),
// going through Read so a ROM or WRAM source is banked correctly.
func (m *MMU) runOAMDMA(source byte) {
	base := uint16(source) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xFE00+i, m.Read(base+i))
	}
}

// CurrentROMBank returns the bank controller's active switchable ROM
// bank, exposed for diagnostics and tests.
func (m *MMU) CurrentROMBank() uint8 {
	return m.mbc.CurrentROMBank()
}

// CartridgeTitle returns the inserted cartridge's header title.
func (m *MMU) CartridgeTitle() string {
	return m.cart.Title()
}
