package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"disnorm/internal/disasm"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Disassemble raw AArch64 code into an objdump-style listing",
	Long: `Decode a flat little-endian AArch64 code blob and print it in the
objdump layout the normalizer reads. Pipe the result back through disnorm
to compare it against another disassembler.`,
	Example: `
# Disassemble a text section extracted with objcopy
disnorm dump --base 0x400000 text.bin | disnorm /dev/stdin
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseFlag, _ := cmd.Flags().GetString("base")
		base, err := strconv.ParseUint(baseFlag, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid base address %q: %w", baseFlag, err)
		}

		code, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		return disasm.Dump(cmd.OutOrStdout(), code, base)
	},
}

func init() {
	dumpCmd.Flags().String("base", "0", "Address of the first instruction")

	rootCmd.AddCommand(dumpCmd)
}
