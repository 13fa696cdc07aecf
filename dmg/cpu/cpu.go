// Package cpu implements the LR35902 fetch/decode/execute loop: the
// register file, the primary and CB-prefixed opcode dispatch tables,
// and HALT/STOP/interrupt-servicing semantics.
package cpu

import (
	"log/slog"

	"github.com/corewave/dmgcore/dmg/addr"
	"github.com/corewave/dmgcore/dmg/interrupt"
	"github.com/corewave/dmgcore/dmg/memory"
)

// CPU holds the LR35902 register file and execution mode flags. All
// memory access goes through the shared MMU; the CPU owns the
// interrupt controller since EI/DI/RETI/HALT are its opcodes.
type CPU struct {
	mmu *memory.MMU
	irq *interrupt.Controller

	a, f, b, c, d, e, h, l uint8
	sp, pc                 uint16

	halted  bool
	stopped bool

	currentOpcode uint16 // last fetched opcode, 0xCBxx for prefixed ones; diagnostics only
}

// New returns a CPU wired to mmu, already reset to the post-boot-ROM
// state documented in the data model (A=0x01 F=0xB0 ... PC=0x0100).
func New(mmu *memory.MMU) *CPU {
	c := &CPU{mmu: mmu, irq: &interrupt.Controller{}}
	c.Reset()
	return c
}

// Reset restores the register file to its power-on values, as if the
// boot ROM had just handed off control to cartridge code at 0x0100.
func (c *CPU) Reset() {
	c.a, c.f = 0x01, 0xB0
	c.b, c.c = 0x00, 0x13
	c.d, c.e = 0x00, 0xD8
	c.h, c.l = 0x01, 0x4D
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.halted = false
	c.stopped = false
	c.irq.IME = false
}

// Stopped reports whether a STOP opcode has suspended the CPU; the
// frame driver uses this to break out of its per-frame loop.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// ClearStop resumes a stopped CPU; called by the joypad on any press.
func (c *CPU) ClearStop() {
	c.stopped = false
}

// Halted reports whether the CPU is idling in HALT, for diagnostics.
func (c *CPU) Halted() bool {
	return c.halted
}

// IME reports the current interrupt-master-enable state, for diagnostics.
func (c *CPU) IME() bool {
	return c.irq.IME
}

func (c *CPU) fetch() uint8 {
	v := c.mmu.Read(c.pc)
	c.pc++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes one instruction (or one HALT tick) and returns the
// number of T-cycles it consumed. It does not advance the timer, the
// PPU or service interrupts - the driver does that afterwards, in the
// order the concurrency model requires.
func (c *CPU) Step() int {
	if c.halted {
		if interrupt.Pending(c.mmu) {
			c.halted = false
		}
		return 4
	}

	opcode := uint16(c.fetch())
	c.currentOpcode = opcode

	var cycles int
	if opcode == 0xCB {
		sub := c.fetch()
		c.currentOpcode = 0xCB00 | uint16(sub)
		cycles = cbTable[sub](c)
	} else {
		cycles = primaryTable[opcode](c)
	}

	c.irq.Advance()

	return cycles
}

// ServiceInterrupts checks IME and the IF/IE registers and, if an
// interrupt is due, pushes PC and jumps to its vector. Called by the
// driver after the timer and PPU have been advanced for this step, per
// the ordering guarantee: interrupts raised during step t become
// observable at step t+1.
func (c *CPU) ServiceInterrupts() {
	i, ok := c.irq.Service(c.mmu)
	if !ok {
		return
	}

	c.halted = false
	c.pushStack(c.pc)
	c.pc = addr.Vector(i)
}

func (c *CPU) pushStack(v uint16) {
	c.sp--
	c.mmu.Write(c.sp, uint8(v>>8))
	c.sp--
	c.mmu.Write(c.sp, uint8(v))
}

func (c *CPU) popStack() uint16 {
	lo := c.mmu.Read(c.sp)
	c.sp++
	hi := c.mmu.Read(c.sp)
	c.sp++
	return uint16(hi)<<8 | uint16(lo)
}

func unimplemented(c *CPU) int {
	slog.Warn("undefined opcode", "opcode", c.currentOpcode, "pc", c.pc-1)
	return 0
}
