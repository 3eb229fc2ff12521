// Package memory implements the Game Boy's flat 64 KiB address space.
package memory

// MMU is the memory management unit: a single 65,536-byte array
// addressed by a 16-bit value. Every address is valid by construction;
// there is no out-of-range access and no failure mode.
//
// The zero value is a ready-to-use, zero-filled MMU.
type MMU struct {
	memory [0x10000]byte
}

// NewMMU returns a zero-filled MMU.
func NewMMU() *MMU {
	return &MMU{}
}

// Read8 returns the byte at addr.
func (m *MMU) Read8(addr uint16) uint8 {
	return m.memory[addr]
}

// Read16 returns the little-endian 16-bit value at addr. The high byte
// is read from addr+1, which wraps modulo 2^16.
func (m *MMU) Read16(addr uint16) uint16 {
	lo := m.memory[addr]
	hi := m.memory[addr+1]
	return uint16(lo) | uint16(hi)<<8
}

// Write8 stores val at addr.
func (m *MMU) Write8(addr uint16, val uint8) {
	m.memory[addr] = val
}

// Write16 stores val at addr, little-endian: the low byte at addr, the
// high byte at addr+1 (which wraps modulo 2^16).
func (m *MMU) Write16(addr uint16, val uint16) {
	m.memory[addr] = uint8(val)
	m.memory[addr+1] = uint8(val >> 8)
}

// Load bulk-copies data into memory starting at start. Bytes that would
// land past 0xFFFF are discarded rather than wrapped.
func (m *MMU) Load(data []byte, start uint16) {
	copy(m.memory[start:], data)
}
