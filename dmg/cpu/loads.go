package cpu

// rrSlots is the 16-bit register pair order the 0x?1/0x?3/0x?9/0x?B
// opcode rows use: BC, DE, HL, SP.
var rrSlots = [4]struct {
	get func(c *CPU) uint16
	set func(c *CPU, v uint16)
}{
	{(*CPU).getBC, (*CPU).setBC},
	{(*CPU).getDE, (*CPU).setDE},
	{(*CPU).getHL, (*CPU).setHL},
	{func(c *CPU) uint16 { return c.sp }, func(c *CPU, v uint16) { c.sp = v }},
}

func opLdBCA(c *CPU) int { c.mmu.Write(c.getBC(), c.a); return 8 }
func opLdDEA(c *CPU) int { c.mmu.Write(c.getDE(), c.a); return 8 }
func opLdABC(c *CPU) int { c.a = c.mmu.Read(c.getBC()); return 8 }
func opLdADE(c *CPU) int { c.a = c.mmu.Read(c.getDE()); return 8 }

func opLdHLIA(c *CPU) int {
	c.mmu.Write(c.getHL(), c.a)
	c.setHL(c.getHL() + 1)
	return 8
}

func opLdHLDA(c *CPU) int {
	c.mmu.Write(c.getHL(), c.a)
	c.setHL(c.getHL() - 1)
	return 8
}

func opLdAHLI(c *CPU) int {
	c.a = c.mmu.Read(c.getHL())
	c.setHL(c.getHL() + 1)
	return 8
}

func opLdAHLD(c *CPU) int {
	c.a = c.mmu.Read(c.getHL())
	c.setHL(c.getHL() - 1)
	return 8
}

func opLdNNSP(c *CPU) int {
	addr := c.fetch16()
	c.mmu.Write(addr, uint8(c.sp))
	c.mmu.Write(addr+1, uint8(c.sp>>8))
	return 20
}

func opLdSPHL(c *CPU) int {
	c.sp = c.getHL()
	return 8
}

func opLdHLSPr8(c *CPU) int {
	offset := int8(c.fetch())
	c.setHL(c.addSPSigned(offset))
	return 12
}

func opAddSPr8(c *CPU) int {
	offset := int8(c.fetch())
	c.sp = c.addSPSigned(offset)
	return 16
}

func opLdANN(c *CPU) int {
	c.a = c.mmu.Read(c.fetch16())
	return 16
}

func opLdNNA(c *CPU) int {
	c.mmu.Write(c.fetch16(), c.a)
	return 16
}

func opLdhNA(c *CPU) int {
	c.mmu.Write(0xFF00+uint16(c.fetch()), c.a)
	return 12
}

func opLdhAN(c *CPU) int {
	c.a = c.mmu.Read(0xFF00 + uint16(c.fetch()))
	return 12
}

func opLdCA(c *CPU) int {
	c.mmu.Write(0xFF00+uint16(c.c), c.a)
	return 8
}

func opLdACp(c *CPU) int {
	c.a = c.mmu.Read(0xFF00 + uint16(c.c))
	return 8
}

func opPushBC(c *CPU) int { c.pushStack(c.getBC()); return 16 }
func opPushDE(c *CPU) int { c.pushStack(c.getDE()); return 16 }
func opPushHL(c *CPU) int { c.pushStack(c.getHL()); return 16 }
func opPushAF(c *CPU) int { c.pushStack(c.getAF()); return 16 }

func opPopBC(c *CPU) int { c.setBC(c.popStack()); return 12 }
func opPopDE(c *CPU) int { c.setDE(c.popStack()); return 12 }
func opPopHL(c *CPU) int { c.setHL(c.popStack()); return 12 }
func opPopAF(c *CPU) int { c.setAF(c.popStack()); return 12 }
