package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJRAddsSignedDisplacement(t *testing.T) {
	mmu := newTestMMU()
	c := NewCPU()
	c.PC = 0x0010
	mmu.Write8(0x0010, 0xFB) // -5

	execJR(c, mmu)

	assert.Equal(t, uint16(0x000C), c.PC)
}

func TestCallAndRetRoundTrip(t *testing.T) {
	mmu := newTestMMU()
	c := NewCPU()
	c.PC = 0x0200
	c.SP = 0xFFFE
	mmu.Write16(0x0200, 0x0500)

	execCALLnn(c, mmu)
	assert.Equal(t, uint16(0x0500), c.PC)
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint16(0x0202), mmu.Read16(0xFFFC), "return address is the byte after CALL's operand")

	execRET(c, mmu)
	assert.Equal(t, uint16(0x0202), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestRETIEnablesIMEImmediatelyNoDelay(t *testing.T) {
	mmu := newTestMMU()
	c := NewCPU()
	c.SP = 0xFFFC
	mmu.Write16(0xFFFC, 0x0040)
	c.imeDelay = 2

	execRETI(c, mmu)

	assert.Equal(t, uint16(0x0040), c.PC)
	assert.True(t, c.IME, "RETI enables IME with no EI-style latency")
	assert.Equal(t, uint8(0), c.imeDelay)
}

func TestMakeRSTPushesPCAndJumpsToVector(t *testing.T) {
	mmu := newTestMMU()
	c := NewCPU()
	c.PC = 0x0150
	c.SP = 0xFFFE

	makeRST(0x38)(c, mmu)

	assert.Equal(t, uint16(0x0038), c.PC)
	assert.Equal(t, uint16(0x0150), mmu.Read16(0xFFFC))
}

func TestConditionalJumpsSkipOperandEvenWhenNotTaken(t *testing.T) {
	mmu := newTestMMU()
	c := NewCPU()
	c.PC = 0x0000
	c.SetFlag(FlagZ, true)
	mmu.Write16(0x0000, 0x9000)

	cycles := makeJPcc(condNZ)(c, mmu)

	assert.Equal(t, uint8(12), cycles)
	assert.Equal(t, uint16(0x0002), c.PC, "PC lands after the 16-bit operand, not at the target")
}
