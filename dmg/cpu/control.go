package cpu

// condition is one of the four branch conditions JP/JR/CALL/RET test.
type condition uint8

const (
	condNZ condition = iota
	condZ
	condNC
	condC
)

func (c *CPU) test(cond condition) bool {
	switch cond {
	case condNZ:
		return !c.flagSet(flagZ)
	case condZ:
		return c.flagSet(flagZ)
	case condNC:
		return !c.flagSet(flagC)
	default:
		return c.flagSet(flagC)
	}
}

func (c *CPU) jp(addr uint16) {
	c.pc = addr
}

func (c *CPU) jr(offset int8) {
	c.pc = uint16(int32(c.pc) + int32(offset))
}

func (c *CPU) call(addr uint16) {
	c.pushStack(c.pc)
	c.pc = addr
}

func (c *CPU) ret() {
	c.pc = c.popStack()
}
