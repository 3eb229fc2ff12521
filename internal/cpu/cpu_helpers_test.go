package cpu

import "gameboy-emulator/internal/memory"

// newTestMMU gives every test in this package a fresh, zero-filled MMU
// without each one importing the memory package directly.
func newTestMMU() *memory.MMU {
	return memory.NewMMU()
}
