package cpu

import "github.com/corewave/dmgcore/dmg/bit"

// flag is one of the four defined bits of the F register.
type flag uint8

const (
	flagZ flag = 1 << 7
	flagN flag = 1 << 6
	flagH flag = 1 << 5
	flagC flag = 1 << 4
)

func (c *CPU) setFlag(f flag) {
	c.f |= uint8(f)
}

func (c *CPU) clearFlag(f flag) {
	c.f &^= uint8(f)
}

func (c *CPU) setFlagTo(f flag, on bool) {
	if on {
		c.setFlag(f)
	} else {
		c.clearFlag(f)
	}
}

func (c *CPU) flagSet(f flag) bool {
	return c.f&uint8(f) != 0
}

// carryBit returns 1 if the carry flag is set, 0 otherwise; used by ADC/SBC.
func (c *CPU) carryBit() uint8 {
	if c.flagSet(flagC) {
		return 1
	}
	return 0
}

func (c *CPU) getAF() uint16 {
	return bit.Combine(c.a, c.f&0xF0)
}

func (c *CPU) setAF(v uint16) {
	c.a = bit.High(v)
	c.f = bit.Low(v) & 0xF0
}

func (c *CPU) getBC() uint16 { return bit.Combine(c.b, c.c) }
func (c *CPU) setBC(v uint16) {
	c.b = bit.High(v)
	c.c = bit.Low(v)
}

func (c *CPU) getDE() uint16 { return bit.Combine(c.d, c.e) }
func (c *CPU) setDE(v uint16) {
	c.d = bit.High(v)
	c.e = bit.Low(v)
}

func (c *CPU) getHL() uint16 { return bit.Combine(c.h, c.l) }
func (c *CPU) setHL(v uint16) {
	c.h = bit.High(v)
	c.l = bit.Low(v)
}
