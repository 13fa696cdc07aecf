package cpu

// regSlots is the canonical operand order the instruction encoding
// uses for its 3-bit register field: B, C, D, E, H, L, (HL), A.
var regSlots = [8]slot{slotB, slotC, slotD, slotE, slotH, slotL, slotHL, slotA}

func slotCycles(s slot, registerCycles, indirectCycles int) int {
	if s.indirect() {
		return indirectCycles
	}
	return registerCycles
}

// cbTable is built once at package init from the eight rotate/shift
// ops and the BIT/RES/SET families, each parameterized over the same
// eight operand slots - the systematic encoding the CB prefix uses.
var cbTable [256]Opcode

func init() {
	rotateOps := [8]func(c *CPU, s slot){
		func(c *CPU, s slot) { c.rlc(s) },
		func(c *CPU, s slot) { c.rrc(s) },
		func(c *CPU, s slot) { c.rl(s) },
		func(c *CPU, s slot) { c.rr(s) },
		func(c *CPU, s slot) { c.sla(s) },
		func(c *CPU, s slot) { c.sra(s) },
		func(c *CPU, s slot) { c.swap(s) },
		func(c *CPU, s slot) { c.srl(s) },
	}

	for op := 0; op < 8; op++ {
		for i, s := range regSlots {
			opcode := op*8 + i
			fn := rotateOps[op]
			slotCopy := s
			cbTable[opcode] = func(c *CPU) int {
				fn(c, slotCopy)
				return slotCycles(slotCopy, 8, 16)
			}
		}
	}

	for n := 0; n < 8; n++ {
		for i, s := range regSlots {
			opcode := 0x40 + n*8 + i
			bitN := uint8(n)
			slotCopy := s
			cbTable[opcode] = func(c *CPU) int {
				c.bit(bitN, slotCopy)
				return slotCycles(slotCopy, 8, 12)
			}
		}
	}

	for n := 0; n < 8; n++ {
		for i, s := range regSlots {
			opcode := 0x80 + n*8 + i
			bitN := uint8(n)
			slotCopy := s
			cbTable[opcode] = func(c *CPU) int {
				c.res(bitN, slotCopy)
				return slotCycles(slotCopy, 8, 16)
			}
		}
	}

	for n := 0; n < 8; n++ {
		for i, s := range regSlots {
			opcode := 0xC0 + n*8 + i
			bitN := uint8(n)
			slotCopy := s
			cbTable[opcode] = func(c *CPU) int {
				c.setBit(bitN, slotCopy)
				return slotCycles(slotCopy, 8, 16)
			}
		}
	}
}
