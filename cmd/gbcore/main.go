// Command gbcore is the CLI envelope around the LR35902 core: a
// disassembler, a one-shot runner, and an interactive debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "gbcore",
		Short: "Sharp LR35902 CPU core: disassemble, run, and debug raw ROM images",
	}

	root.AddCommand(newDisasmCmd(), newRunCmd(), newDebugCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
