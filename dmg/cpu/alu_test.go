package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInc8SetsZeroAndHalfCarryOnWrap(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.b = 0xFF

	c.inc8(slotB)

	assert.Equal(t, uint8(0), c.b)
	assert.True(t, c.flagSet(flagZ))
	assert.True(t, c.flagSet(flagH))
	assert.False(t, c.flagSet(flagN))
}

func TestDec8SetsNAndHalfBorrow(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.b = 0x00

	c.dec8(slotB)

	assert.Equal(t, uint8(0xFF), c.b)
	assert.True(t, c.flagSet(flagN))
	assert.True(t, c.flagSet(flagH))
	assert.False(t, c.flagSet(flagZ))
}

func TestAdd8SetsCarryWithoutHalfCarry(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.a = 0xF0

	c.add8(0x20, false)

	assert.Equal(t, uint8(0x10), c.a)
	assert.True(t, c.flagSet(flagC))
	assert.False(t, c.flagSet(flagH))
	assert.False(t, c.flagSet(flagZ))
}

func TestAdd8WithCarryIncludesCarryBit(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.setFlag(flagC)
	c.a = 0x0F

	c.add8(0x00, true)

	assert.Equal(t, uint8(0x10), c.a)
	assert.True(t, c.flagSet(flagH))
}

func TestSub8CPDiscardsResultButSetsFlags(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.a = 0x10

	c.sub8(0x10, false, true)

	assert.Equal(t, uint8(0x10), c.a) // A untouched by CP
	assert.True(t, c.flagSet(flagZ))
	assert.True(t, c.flagSet(flagN))
}

func TestSub8BorrowSetsCarry(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.a = 0x00

	c.sub8(0x01, false, false)

	assert.Equal(t, uint8(0xFF), c.a)
	assert.True(t, c.flagSet(flagC))
	assert.True(t, c.flagSet(flagH))
}

func TestAndOrXorSetFlagsAccordingToResult(t *testing.T) {
	c := newTestCPU()
	c.a = 0xF0
	c.and8(0x0F)
	assert.Equal(t, uint8(0), c.a)
	assert.True(t, c.flagSet(flagZ))
	assert.True(t, c.flagSet(flagH))
	assert.False(t, c.flagSet(flagC))

	c.a = 0xF0
	c.or8(0x0F)
	assert.Equal(t, uint8(0xFF), c.a)
	assert.False(t, c.flagSet(flagZ))

	c.a = 0xFF
	c.xor8(0xFF)
	assert.Equal(t, uint8(0), c.a)
	assert.True(t, c.flagSet(flagZ))
}

func TestAddHLSetsHalfCarryAndCarryOn16BitOverflow(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.setHL(0xFFFF)

	c.addHL(0x0001)

	assert.Equal(t, uint16(0x0000), c.getHL())
	assert.True(t, c.flagSet(flagC))
	assert.True(t, c.flagSet(flagH))
}

func TestRlcRotatesThroughCarryBit7(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.b = 0x80

	result := c.rlc(slotB)

	assert.Equal(t, uint8(0x01), result)
	assert.True(t, c.flagSet(flagC))
}

func TestRlUsesIncomingCarryAsBit0(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.setFlag(flagC)
	c.b = 0x00

	result := c.rl(slotB)

	assert.Equal(t, uint8(0x01), result)
	assert.False(t, c.flagSet(flagC))
}

func TestSrlShiftsInZeroAndCapturesCarry(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.b = 0x01

	c.srl(slotB)

	assert.Equal(t, uint8(0x00), c.b)
	assert.True(t, c.flagSet(flagC))
	assert.True(t, c.flagSet(flagZ))
}

func TestSwapExchangesNibbles(t *testing.T) {
	c := newTestCPU()
	c.b = 0xA5

	c.swap(slotB)

	assert.Equal(t, uint8(0x5A), c.b)
	assert.False(t, c.flagSet(flagC))
}

func TestBitSetsZeroWhenBitClear(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.b = 0x00

	c.bit(3, slotB)

	assert.True(t, c.flagSet(flagZ))
	assert.True(t, c.flagSet(flagH))
	assert.False(t, c.flagSet(flagN))
}

func TestResAndSetBitMutateTargetBit(t *testing.T) {
	c := newTestCPU()
	c.b = 0xFF

	c.res(2, slotB)
	assert.Equal(t, uint8(0xFB), c.b)

	c.setBit(0, slotB)
	assert.Equal(t, uint8(0xFB), c.b) // bit 0 was already set
	c.res(0, slotB)
	c.setBit(0, slotB)
	assert.Equal(t, uint8(0xFB), c.b)
}

func TestDaaCorrectsAfterBCDAddition(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.a = 0x09
	c.add8(0x09, false) // binary 0x12, not valid BCD

	c.daa()

	assert.Equal(t, uint8(0x18), c.a) // decimal-adjusted to 18
	assert.False(t, c.flagSet(flagC))
}

func TestAddSPSignedComputesFlagsOnLowByte(t *testing.T) {
	c := newTestCPU()
	c.f = 0
	c.sp = 0x00FF

	result := c.addSPSigned(1)

	assert.Equal(t, uint16(0x0100), result)
	assert.True(t, c.flagSet(flagH))
	assert.True(t, c.flagSet(flagC))
	assert.False(t, c.flagSet(flagZ))
}
