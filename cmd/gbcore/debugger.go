package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gameboy-emulator/internal/cpu"
	"gameboy-emulator/internal/disasm"
	"gameboy-emulator/internal/memory"
)

// debugger holds the session state the REPL commands mutate: the CPU
// and MMU under inspection, plus the path of the last loaded image.
// "file" with no argument prints a usage line; it does not reload.
type debugger struct {
	cpu     *cpu.CPU
	mmu     *memory.MMU
	romPath string
}

func newDebugger() *debugger {
	return &debugger{cpu: cpu.NewCPU(), mmu: memory.NewMMU()}
}

// runCommand parses one REPL line and returns the text to display.
// quit is true when the session should end.
func (d *debugger) runCommand(line string) (output string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "help":
		return helpText, false
	case "file":
		if len(fields) < 2 {
			return "usage: file <path>", false
		}
		return d.cmdFile(fields[1]), false
	case "next":
		return d.cmdNext(), false
	case "run":
		return d.cmdRun(), false
	case "list":
		n := 10
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		return d.cmdList(n), false
	case "dump":
		return d.cmdDump(fields[1:]), false
	case "print":
		return d.cmdPrint(), false
	case "quit":
		return "goodbye", true
	default:
		return fmt.Sprintf("unknown command %q (try \"help\")", fields[0]), false
	}
}

const helpText = `commands:
  help            show this text
  file <path>     load a raw ROM image at address 0 and reset the CPU
  next            execute a single instruction
  run             run until the CPU stops
  list [n]        disassemble n instructions starting at PC (default 10)
  dump <a> [n]    hex dump n bytes starting at address a (default 64)
  print           print register and flag state
  quit            exit the debugger`

func (d *debugger) cmdFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	d.mmu = memory.NewMMU()
	d.mmu.Load(data, 0x0000)
	d.cpu = cpu.NewCPU()
	d.romPath = path
	return fmt.Sprintf("loaded %s (%d bytes)", path, len(data))
}

func (d *debugger) cmdNext() string {
	pc := d.cpu.PC
	text, _ := disasm.Disassemble(d.mmu, pc)
	cycles, err := d.cpu.Step(d.mmu)
	if err != nil {
		return fmt.Sprintf("0x%04X  %-20s error: %v", pc, text, err)
	}
	return fmt.Sprintf("0x%04X  %-20s (%d T-states)", pc, text, cycles)
}

func (d *debugger) cmdRun() string {
	err := d.cpu.Run(d.mmu, nil)
	if err != nil {
		return fmt.Sprintf("stopped with error: %v", err)
	}
	return fmt.Sprintf("stopped at PC=0x%04X", d.cpu.PC)
}

func (d *debugger) cmdList(n int) string {
	var b strings.Builder
	pc := d.cpu.PC
	for i := 0; i < n; i++ {
		text, length := disasm.Disassemble(d.mmu, pc)
		fmt.Fprintf(&b, "0x%04X  %s\n", pc, text)
		if length <= 0 {
			length = 1
		}
		pc += uint16(length)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *debugger) cmdDump(args []string) string {
	addr := uint64(0)
	length := uint64(64)
	if len(args) > 0 {
		addr, _ = strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 16)
	}
	if len(args) > 1 {
		length, _ = strconv.ParseUint(args[1], 10, 16)
	}

	var b strings.Builder
	a := uint16(addr)
	for i := uint64(0); i < length; i += 16 {
		fmt.Fprintf(&b, "0x%04X  ", a)
		for j := uint16(0); j < 16 && uint64(i)+uint64(j) < length; j++ {
			fmt.Fprintf(&b, "%02X ", d.mmu.Read8(a+j))
		}
		a += 16
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *debugger) cmdPrint() string {
	c := d.cpu
	return fmt.Sprintf(
		"A=0x%02X F=0x%02X BC=0x%04X DE=0x%04X HL=0x%04X\nSP=0x%04X PC=0x%04X  Z=%d N=%d H=%d C=%d\nIME=%t halted=%t stopped=%t  M=%d T=%d",
		c.A, c.F, c.GetBC(), c.GetDE(), c.GetHL(),
		c.SP, c.PC, b2i(c.GetFlag(cpu.FlagZ)), b2i(c.GetFlag(cpu.FlagN)), b2i(c.GetFlag(cpu.FlagH)), b2i(c.GetFlag(cpu.FlagC)),
		c.IME, c.Halted, c.Stopped, c.M, c.T,
	)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
