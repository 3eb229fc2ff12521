package cpu

import "gameboy-emulator/internal/memory"

// fetch8 reads the immediate byte following the opcode and advances PC.
func fetch8(cpu *CPU, mmu *memory.MMU) uint8 {
	v := mmu.Read8(cpu.PC)
	cpu.PC++
	return v
}

// fetch16 reads the little-endian immediate word following the opcode
// and advances PC by two.
func fetch16(cpu *CPU, mmu *memory.MMU) uint16 {
	v := mmu.Read16(cpu.PC)
	cpu.PC += 2
	return v
}

// fetchRel8 reads the signed displacement byte following the opcode and
// advances PC by one.
func fetchRel8(cpu *CPU, mmu *memory.MMU) int8 {
	return int8(fetch8(cpu, mmu))
}

func execNOP(cpu *CPU, mmu *memory.MMU) uint8 { return 4 }

func makeLDrr(dst, src uint8) ExecFunc {
	return func(cpu *CPU, mmu *memory.MMU) uint8 {
		cpu.set8(mmu, dst, cpu.get8(mmu, src))
		return regCycles(dst, regCycles(src, 4, 8), 8)
	}
}

func makeLDrN(reg uint8) ExecFunc {
	return func(cpu *CPU, mmu *memory.MMU) uint8 {
		n := fetch8(cpu, mmu)
		cpu.set8(mmu, reg, n)
		return regCycles(reg, 8, 12)
	}
}

func makeLDrrNN(pair uint8) ExecFunc {
	return func(cpu *CPU, mmu *memory.MMU) uint8 {
		cpu.set16(pair, fetch16(cpu, mmu))
		return 12
	}
}

func execLDIndBCA(cpu *CPU, mmu *memory.MMU) uint8 {
	mmu.Write8(cpu.GetBC(), cpu.A)
	return 8
}

func execLDIndDEA(cpu *CPU, mmu *memory.MMU) uint8 {
	mmu.Write8(cpu.GetDE(), cpu.A)
	return 8
}

func execLDIndHLIncA(cpu *CPU, mmu *memory.MMU) uint8 {
	hl := cpu.GetHL()
	mmu.Write8(hl, cpu.A)
	cpu.SetHL(hl + 1)
	return 8
}

func execLDIndHLDecA(cpu *CPU, mmu *memory.MMU) uint8 {
	hl := cpu.GetHL()
	mmu.Write8(hl, cpu.A)
	cpu.SetHL(hl - 1)
	return 8
}

func execLDAIndBC(cpu *CPU, mmu *memory.MMU) uint8 {
	cpu.A = mmu.Read8(cpu.GetBC())
	return 8
}

func execLDAIndDE(cpu *CPU, mmu *memory.MMU) uint8 {
	cpu.A = mmu.Read8(cpu.GetDE())
	return 8
}

func execLDAIndHLInc(cpu *CPU, mmu *memory.MMU) uint8 {
	hl := cpu.GetHL()
	cpu.A = mmu.Read8(hl)
	cpu.SetHL(hl + 1)
	return 8
}

func execLDAIndHLDec(cpu *CPU, mmu *memory.MMU) uint8 {
	hl := cpu.GetHL()
	cpu.A = mmu.Read8(hl)
	cpu.SetHL(hl - 1)
	return 8
}

func execLDIndNNSP(cpu *CPU, mmu *memory.MMU) uint8 {
	addr := fetch16(cpu, mmu)
	mmu.Write16(addr, cpu.SP)
	return 20
}

func execLDIndNNA(cpu *CPU, mmu *memory.MMU) uint8 {
	addr := fetch16(cpu, mmu)
	mmu.Write8(addr, cpu.A)
	return 16
}

func execLDAIndNN(cpu *CPU, mmu *memory.MMU) uint8 {
	addr := fetch16(cpu, mmu)
	cpu.A = mmu.Read8(addr)
	return 16
}

func execLDHnA(cpu *CPU, mmu *memory.MMU) uint8 {
	n := fetch8(cpu, mmu)
	mmu.Write8(0xFF00+uint16(n), cpu.A)
	return 12
}

func execLDHAn(cpu *CPU, mmu *memory.MMU) uint8 {
	n := fetch8(cpu, mmu)
	cpu.A = mmu.Read8(0xFF00 + uint16(n))
	return 12
}

func execLDIndCA(cpu *CPU, mmu *memory.MMU) uint8 {
	mmu.Write8(0xFF00+uint16(cpu.C), cpu.A)
	return 8
}

func execLDAIndC(cpu *CPU, mmu *memory.MMU) uint8 {
	cpu.A = mmu.Read8(0xFF00 + uint16(cpu.C))
	return 8
}

func execLDSPHL(cpu *CPU, mmu *memory.MMU) uint8 {
	cpu.SP = cpu.GetHL()
	return 8
}

func execLDHLSPe(cpu *CPU, mmu *memory.MMU) uint8 {
	e := fetchRel8(cpu, mmu)
	result, h, c := addSPFlags(cpu.SP, e)
	cpu.SetHL(result)
	cpu.setFlags(false, false, h, c)
	return 12
}

func execADDSPe(cpu *CPU, mmu *memory.MMU) uint8 {
	e := fetchRel8(cpu, mmu)
	result, h, c := addSPFlags(cpu.SP, e)
	cpu.SP = result
	cpu.setFlags(false, false, h, c)
	return 16
}
