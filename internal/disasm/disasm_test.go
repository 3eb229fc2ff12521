package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gameboy-emulator/internal/cpu"
	"gameboy-emulator/internal/memory"
)

func TestDisassembleNoOperand(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x00)

	text, length := Disassemble(mmu, 0x0000)

	assert.Equal(t, "NOP", text)
	assert.Equal(t, 1, length)
}

func TestDisassembleImm8(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x06) // LD B,n
	mmu.Write8(0x0001, 0x2A)

	text, length := Disassemble(mmu, 0x0000)

	assert.Equal(t, "LD B,0x2A", text)
	assert.Equal(t, 2, length)
}

func TestDisassembleImm16(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x01) // LD BC,nn
	mmu.Write16(0x0001, 0xBEEF)

	text, length := Disassemble(mmu, 0x0000)

	assert.Equal(t, "LD BC,0xBEEF", text)
	assert.Equal(t, 3, length)
}

func TestDisassembleRel8PositiveHasExplicitSign(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x18) // JR e
	mmu.Write8(0x0001, 0x05)

	text, _ := Disassemble(mmu, 0x0000)

	assert.Equal(t, "JR +5", text)
}

func TestDisassembleRel8NegativeIsSignedDecimalNotHex(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x18) // JR e
	mmu.Write8(0x0001, 0xFB) // -5

	text, _ := Disassemble(mmu, 0x0000)

	assert.Equal(t, "JR -5", text)
}

func TestDisassembleCBPrefixed(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0xCB)
	mmu.Write8(0x0001, 0x7C) // BIT 7,H

	text, length := Disassemble(mmu, 0x0000)

	assert.Equal(t, "BIT 7,H", text)
	assert.Equal(t, 2, length)
}

func TestDisassembleLengthAgreesWithStepPCAdvance(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x3E) // LD A,n
	mmu.Write8(0x0001, 0x99)

	_, length := Disassemble(mmu, 0x0000)

	c := cpu.NewCPU()
	c.Step(mmu)

	assert.Equal(t, length, int(c.PC))
}

func TestDisassembleCBLengthAgreesWithStepPCAdvance(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0xCB)
	mmu.Write8(0x0001, 0x7C) // BIT 7,H

	_, length := Disassemble(mmu, 0x0000)

	c := cpu.NewCPU()
	c.Step(mmu)

	assert.Equal(t, length, int(c.PC))
}

func TestDisassembleIndirectHLRegisterName(t *testing.T) {
	mmu := memory.NewMMU()
	mmu.Write8(0x0000, 0x34) // INC (HL)

	text, _ := Disassemble(mmu, 0x0000)

	assert.Equal(t, "INC (HL)", text)
}
