package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gameboy-emulator/internal/cpu"
	"gameboy-emulator/internal/disasm"
	"gameboy-emulator/internal/memory"
)

func newRunCmd() *cobra.Command {
	var trace bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a raw ROM image at address 0 and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			mmu := memory.NewMMU()
			mmu.Load(data, 0x0000)

			c := cpu.NewCPU()
			c.Strict = strict

			var tracer func(pc uint16)
			if trace {
				tracer = func(pc uint16) {
					text, _ := disasm.Disassemble(mmu, pc)
					fmt.Printf("0x%04X  %s\n", pc, text)
				}
			}

			if err := c.Run(mmu, tracer); err != nil {
				return fmt.Errorf("execution stopped: %w", err)
			}

			fmt.Printf("halted: A=0x%02X BC=0x%04X DE=0x%04X HL=0x%04X SP=0x%04X PC=0x%04X T=%d\n",
				c.A, c.GetBC(), c.GetDE(), c.GetHL(), c.SP, c.PC, c.T)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print each instruction before it executes")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on undefined opcodes instead of treating them as NOP")
	return cmd
}
