package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gameboy-emulator/internal/disasm"
	"gameboy-emulator/internal/memory"
)

func newDisasmCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "disasm <rom>",
		Short: "Disassemble a raw binary, one mnemonic per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			return disassembleAll(data, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write mnemonics to this file instead of stdout")
	return cmd
}

// disassembleAll loads data at address 0 and walks it start to end,
// printing one "0xADDR  MNEMONIC" line per instruction.
func disassembleAll(data []byte, out *os.File) error {
	mmu := memory.NewMMU()
	mmu.Load(data, 0x0000)

	w := bufio.NewWriter(out)
	defer w.Flush()

	pc := uint16(0)
	for int(pc) < len(data) {
		text, length := disasm.Disassemble(mmu, pc)
		if _, err := fmt.Fprintf(w, "0x%04X  %s\n", pc, text); err != nil {
			return err
		}
		if length <= 0 {
			length = 1
		}
		pc += uint16(length)
	}
	return nil
}
