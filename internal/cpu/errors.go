package cpu

import "errors"

// ErrIllegalOpcode is returned by Step when CPU.Strict is enabled and
// the fetched opcode is one of the LR35902's undefined byte values.
// The CPU is left exactly as it was before the failing Step call.
var ErrIllegalOpcode = errors.New("illegal opcode")
