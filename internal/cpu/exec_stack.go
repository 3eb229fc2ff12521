package cpu

import "gameboy-emulator/internal/memory"

func makePUSH(stackPair uint8) ExecFunc {
	return func(cpu *CPU, mmu *memory.MMU) uint8 {
		push16(cpu, mmu, cpu.getStackPair(stackPair))
		return 16
	}
}

// makePOP pops a 16-bit pair off the stack. For stackAF, setStackPair
// routes through SetAF, which masks the low nibble of F back to zero.
func makePOP(stackPair uint8) ExecFunc {
	return func(cpu *CPU, mmu *memory.MMU) uint8 {
		cpu.setStackPair(stackPair, pop16(cpu, mmu))
		return 12
	}
}
