// Package interrupt implements the DMG interrupt controller: the IME
// flag (with its two-instruction-delayed EI/DI semantics) and the
// priority dispatch over the IF/IE registers. IF and IE themselves are
// owned by the MMU; the controller only ever touches them through the
// Bus interface below. The timer, PPU and joypad raise requests through
// the MMU's own RequestInterrupt method, not through this package.
package interrupt

import "github.com/corewave/dmgcore/dmg/addr"

// Bus is the minimal memory access the controller needs to read and
// acknowledge pending interrupts.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// priority lists the five sources in DMG dispatch priority order.
var priority = [...]addr.Interrupt{
	addr.VBlank,
	addr.LCDSTAT,
	addr.Timer,
	addr.Serial,
	addr.Joypad,
}

// Controller tracks IME and the deferred EI/DI activation counters.
type Controller struct {
	IME bool

	eiPending int // counts down to 1, then IME is set and this clears
	diPending int // counts down to 1, then IME is cleared and this clears
}

// RequestEnable arms a delayed EI: IME is set after two more Steps.
func (c *Controller) RequestEnable() {
	c.eiPending = 2
}

// RequestDisable arms a delayed DI: IME is cleared after two more Steps.
func (c *Controller) RequestDisable() {
	c.diPending = 2
}

// Advance ticks the deferred EI/DI counters; call once per CPU step,
// after the opcode has been dispatched.
func (c *Controller) Advance() {
	if c.diPending > 0 {
		c.diPending--
		if c.diPending == 0 {
			c.IME = false
		}
	}
	if c.eiPending > 0 {
		c.eiPending--
		if c.eiPending == 0 {
			c.IME = true
		}
	}
}

// Request sets the IF bit for the given interrupt source.
func Request(bus Bus, i addr.Interrupt) {
	flags := bus.Read(addr.IF)
	bus.Write(addr.IF, flags|uint8(i))
}

// Pending reports whether any enabled interrupt is flagged, independent
// of IME. HALT exits on this condition regardless of IME.
func Pending(bus Bus) bool {
	return bus.Read(addr.IF)&bus.Read(addr.IE)&0x1F != 0
}

// Service picks the highest-priority pending, enabled interrupt (if IME
// is set), clears its IF bit and clears IME, returning the interrupt
// and true. It does not touch PC or the stack - that is the caller's
// (the CPU's) job, since pushing PC and un-halting are CPU concerns.
func (c *Controller) Service(bus Bus) (addr.Interrupt, bool) {
	if !c.IME {
		return 0, false
	}

	flags := bus.Read(addr.IF) & bus.Read(addr.IE) & 0x1F
	if flags == 0 {
		return 0, false
	}

	for _, i := range priority {
		if flags&uint8(i) != 0 {
			c.IME = false
			bus.Write(addr.IF, bus.Read(addr.IF)&^uint8(i))
			return i, true
		}
	}

	return 0, false
}
