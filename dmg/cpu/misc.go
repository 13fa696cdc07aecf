package cpu

func opNOP(c *CPU) int { return 4 }

// opSTOP sets the stop flag; the padding byte that follows STOP on
// real hardware is fetched and discarded, per the standard encoding.
func opSTOP(c *CPU) int {
	c.stopped = true
	c.fetch()
	return 4
}

func opHALT(c *CPU) int {
	c.halted = true
	return 4
}

func opDI(c *CPU) int {
	c.irq.RequestDisable()
	return 4
}

func opEI(c *CPU) int {
	c.irq.RequestEnable()
	return 4
}

func opDAA(c *CPU) int {
	c.daa()
	return 4
}

func opCPL(c *CPU) int {
	c.a = ^c.a
	c.setFlag(flagN)
	c.setFlag(flagH)
	return 4
}

func opSCF(c *CPU) int {
	c.setFlag(flagC)
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	return 4
}

func opCCF(c *CPU) int {
	c.setFlagTo(flagC, !c.flagSet(flagC))
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	return 4
}

func opRLCA(c *CPU) int { c.rlca(); return 4 }
func opRRCA(c *CPU) int { c.rrca(); return 4 }
func opRLA(c *CPU) int  { c.rla(); return 4 }
func opRRA(c *CPU) int  { c.rra(); return 4 }
